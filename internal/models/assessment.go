package models

// Assessment is the vehicle-damage cost-breakdown sub-form stored under
// form_data.assessment. Every totals block is a cache of a pure computation
// over its rows; readers must recompute rather than trust stored totals.
type Assessment struct {
	Header              AssessmentHeader  `json:"header"`
	Spares              SparesTable       `json:"spares"`
	SupplementarySpares SparesTable       `json:"supplementary_spares"`
	Labour              LabourTable       `json:"labour"`
	SupplementaryLabour LabourTable       `json:"supplementary_labour"`
	Summary             AssessmentSummary `json:"summary"`
}

// AssessmentHeader holds the worksheet's identifying fields
type AssessmentHeader struct {
	VehicleRegNo  string `json:"vehicle_reg_no"`
	MakeModel     string `json:"make_model"`
	PolicyNumber  string `json:"policy_number"`
	SurveyorName  string `json:"surveyor_name"`
	AssessedDate  string `json:"assessed_date"`
	GarageName    string `json:"garage_name"`
	EstimateRefNo string `json:"estimate_ref_no"`
}

// SparesRow is one spare-parts line item. The assessed amount is attributed
// to exactly one of the three categories; setting one nonzero resets the
// other two.
type SparesRow struct {
	ID                    string  `json:"id"`
	Description           string  `json:"description"`
	Quantity              float64 `json:"qty"`
	EstimatedAmount       float64 `json:"estimated_amount"`
	AssessedGlass         float64 `json:"assessed_glass"`
	AssessedPlasticRubber float64 `json:"assessed_plastic_rubber"`
	AssessedOthersMetal   float64 `json:"assessed_others_metal"`
}

// SparesTable groups spare-parts rows with their tax and depreciation inputs
// and the derived totals block.
type SparesTable struct {
	Rows []SparesRow `json:"rows"`

	CGSTPercent             float64 `json:"cgst_percent"`
	SGSTPercent             float64 `json:"sgst_percent"`
	DepGlassPercent         float64 `json:"dep_glass_percent"`
	DepPlasticRubberPercent float64 `json:"dep_plastic_rubber_percent"`
	DepOthersMetalPercent   float64 `json:"dep_others_metal_percent"`

	Totals SparesTotals `json:"totals"`
}

// SparesTotals is the derived block for a spares table. GST is computed on
// the assessed total; the grand total is the estimated total plus GST.
type SparesTotals struct {
	TotalQuantity              float64 `json:"total_qty"`
	TotalEstimated             float64 `json:"total_estimated"`
	TotalAssessedGlass         float64 `json:"total_assessed_glass"`
	TotalAssessedPlasticRubber float64 `json:"total_assessed_plastic_rubber"`
	TotalAssessedOthersMetal   float64 `json:"total_assessed_others_metal"`
	AssessedTotal              float64 `json:"assessed_total"`
	CGSTAmount                 float64 `json:"cgst_amount"`
	SGSTAmount                 float64 `json:"sgst_amount"`
	TotalWithGST               float64 `json:"total_with_gst"`
	DepGlassAmount             float64 `json:"dep_glass_amount"`
	DepPlasticRubberAmount     float64 `json:"dep_plastic_rubber_amount"`
	DepOthersMetalAmount       float64 `json:"dep_others_metal_amount"`
	TotalDepreciation          float64 `json:"total_depreciation"`
	NetAmount                  float64 `json:"net_amount"`
}

// LabourRow is one labour line item
type LabourRow struct {
	ID              string  `json:"id"`
	Description     string  `json:"description"`
	EstimatedAmount float64 `json:"estimated_amount"`
	AssessedAmount  float64 `json:"assessed_amount"`
}

// LabourTable groups labour rows with tax inputs, a single statutory
// deduction percentage and the derived totals block.
type LabourTable struct {
	Rows []LabourRow `json:"rows"`

	CGSTPercent      float64 `json:"cgst_percent"`
	SGSTPercent      float64 `json:"sgst_percent"`
	DeductionPercent float64 `json:"deduction_percent"`

	Totals LabourTotals `json:"totals"`
}

// LabourTotals is the derived block for a labour table
type LabourTotals struct {
	TotalEstimated  float64 `json:"total_estimated"`
	TotalAssessed   float64 `json:"total_assessed"`
	CGSTAmount      float64 `json:"cgst_amount"`
	SGSTAmount      float64 `json:"sgst_amount"`
	TotalWithGST    float64 `json:"total_with_gst"`
	DeductionAmount float64 `json:"deduction_amount"`
	NetAmount       float64 `json:"net_amount"`
}

// AssessmentSummary combines the four tables' net amounts with the two
// user-entered subtractions. Only SalvageValue and PolicyExcess are inputs;
// everything else is recomputed on read.
type AssessmentSummary struct {
	SparesNet              float64 `json:"spares_net"`
	SupplementarySparesNet float64 `json:"supplementary_spares_net"`
	LabourNet              float64 `json:"labour_net"`
	SupplementaryLabourNet float64 `json:"supplementary_labour_net"`
	GrossTotal             float64 `json:"gross_total"`
	SalvageValue           float64 `json:"salvage_value"`
	PolicyExcess           float64 `json:"policy_excess"`
	NetLiability           float64 `json:"net_liability"`
}
