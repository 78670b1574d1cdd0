// Package registry supplies the standard field descriptors for each policy
// type. It is a pure catalog: no side effects, no persistence, and the same
// policy type name always yields the same ordered descriptor list.
package registry

import (
	"strings"

	"github.com/djcoder02-glitch/claim-portal-backend/internal/models"
)

// commonDescriptors is the baseline every policy type shares, grouped into
// the four default sections.
var commonDescriptors = []models.FieldDescriptor{
	// Claim details
	{Name: "insured_name", Label: "Insured Name", Kind: models.FieldKindText, Required: true, SectionID: models.SectionClaimDetails},
	{Name: "policy_number", Label: "Policy Number", Kind: models.FieldKindText, Required: true, SectionID: models.SectionClaimDetails},
	{Name: "date_of_loss", Label: "Date of Loss", Kind: models.FieldKindDate, Required: true, SectionID: models.SectionClaimDetails},
	{Name: "intimation_date", Label: "Intimation Date", Kind: models.FieldKindDate, SectionID: models.SectionClaimDetails},
	{Name: "place_of_loss", Label: "Place of Loss", Kind: models.FieldKindText, SectionID: models.SectionClaimDetails},
	{Name: "cause_of_loss", Label: "Cause of Loss", Kind: models.FieldKindMultiline, SectionID: models.SectionClaimDetails},

	// Insured details
	{Name: "insured_address", Label: "Insured Address", Kind: models.FieldKindMultiline, SectionID: models.SectionInsured},
	{Name: "contact_number", Label: "Contact Number", Kind: models.FieldKindText, SectionID: models.SectionInsured},
	{Name: "email", Label: "Email", Kind: models.FieldKindText, SectionID: models.SectionInsured},
	{Name: "bank_account", Label: "Bank Account", Kind: models.FieldKindText, SectionID: models.SectionInsured},
	{Name: "ifsc_code", Label: "IFSC Code", Kind: models.FieldKindText, SectionID: models.SectionInsured},

	// Survey & loss
	{Name: "surveyor_name", Label: "Surveyor Name", Kind: models.FieldKindText, SectionID: models.SectionSurvey},
	{Name: "survey_date", Label: "Survey Date", Kind: models.FieldKindDate, SectionID: models.SectionSurvey},
	{Name: "estimated_loss", Label: "Estimated Loss", Kind: models.FieldKindNumber, SectionID: models.SectionSurvey},
	{Name: "loss_type", Label: "Loss Type", Kind: models.FieldKindSelect, Options: []string{"Partial Loss", "Total Loss", "Constructive Total Loss"}, SectionID: models.SectionSurvey},
	{Name: "damage_description", Label: "Damage Description", Kind: models.FieldKindMultiline, SectionID: models.SectionSurvey},
	{Name: "is_total_loss", Label: "Total Loss", Kind: models.FieldKindBoolean, SectionID: models.SectionSurvey},

	// Settlement
	{Name: "assessed_amount", Label: "Assessed Amount", Kind: models.FieldKindNumber, SectionID: models.SectionSettlement},
	{Name: "settlement_amount", Label: "Settlement Amount", Kind: models.FieldKindNumber, SectionID: models.SectionSettlement},
	{Name: "settlement_date", Label: "Settlement Date", Kind: models.FieldKindDate, SectionID: models.SectionSettlement},
	{Name: "settlement_mode", Label: "Settlement Mode", Kind: models.FieldKindSelect, Options: []string{"NEFT", "Cheque", "Demand Draft"}, SectionID: models.SectionSettlement},
	{Name: "remarks", Label: "Remarks", Kind: models.FieldKindMultiline, SectionID: models.SectionSettlement},
}

var marineDescriptors = []models.FieldDescriptor{
	{Name: "vessel_name", Label: "Vessel Name", Kind: models.FieldKindText, SectionID: models.SectionInsured},
	{Name: "port_loading", Label: "Port of Loading", Kind: models.FieldKindText, SectionID: models.SectionInsured},
	{Name: "port_discharge", Label: "Port of Discharge", Kind: models.FieldKindText, SectionID: models.SectionInsured},
	{Name: "bl_number", Label: "B/L Number", Kind: models.FieldKindText, SectionID: models.SectionInsured},
}

var fireDescriptors = []models.FieldDescriptor{
	{Name: "building_type", Label: "Building Type", Kind: models.FieldKindText, SectionID: models.SectionInsured},
	{Name: "occupancy", Label: "Occupancy", Kind: models.FieldKindText, SectionID: models.SectionInsured},
	{Name: "sum_insured_building", Label: "Sum Insured (Building)", Kind: models.FieldKindNumber, SectionID: models.SectionInsured},
	{Name: "sum_insured_contents", Label: "Sum Insured (Contents)", Kind: models.FieldKindNumber, SectionID: models.SectionInsured},
	{Name: "fire_brigade_attended", Label: "Fire Brigade Attended", Kind: models.FieldKindBoolean, SectionID: models.SectionSurvey},
}

var motorDescriptors = []models.FieldDescriptor{
	{Name: "vehicle_reg_no", Label: "Vehicle Registration No", Kind: models.FieldKindText, SectionID: models.SectionInsured},
	{Name: "make_model", Label: "Make / Model", Kind: models.FieldKindText, SectionID: models.SectionInsured},
	{Name: "year_of_manufacture", Label: "Year of Manufacture", Kind: models.FieldKindNumber, SectionID: models.SectionInsured},
	{Name: "garage_name", Label: "Garage Name", Kind: models.FieldKindText, SectionID: models.SectionSurvey},
}

// specialization maps a policy-type name fragment to its extra descriptors.
// Matching is case-insensitive substring; the first matching branch wins.
type specialization struct {
	fragment string
	extra    []models.FieldDescriptor
}

var specializations = []specialization{
	{fragment: "marine", extra: marineDescriptors},
	{fragment: "fire", extra: fireDescriptors},
	{fragment: "motor", extra: motorDescriptors},
}

// GetDescriptors returns the ordered standard descriptor list for a policy
// type: the common baseline, plus the first matching specialization's fields
// appended. Unknown types get the baseline unmodified.
func GetDescriptors(policyTypeName string) []models.FieldDescriptor {
	out := make([]models.FieldDescriptor, 0, len(commonDescriptors)+5)
	out = append(out, commonDescriptors...)

	lowered := strings.ToLower(policyTypeName)
	for _, s := range specializations {
		if strings.Contains(lowered, s.fragment) {
			out = append(out, s.extra...)
			break
		}
	}
	return out
}

// DescriptorByName looks a field up in the combined standard set for a policy
// type. Returns nil when the name is unknown.
func DescriptorByName(policyTypeName, fieldName string) *models.FieldDescriptor {
	for _, d := range GetDescriptors(policyTypeName) {
		if d.Name == fieldName {
			return &d
		}
	}
	return nil
}
