package formdata

import "github.com/djcoder02-glitch/claim-portal-backend/internal/models"

// MigrateLegacySectionIDs backfills section assignments for custom
// descriptors saved before sections existed. Each descriptor missing a
// section gets one of the four default sections, round-robin by its position
// in the stored array. Applied once at load so nothing downstream ever sees a
// descriptor without a section.
func MigrateLegacySectionIDs(fd *models.FormData) {
	for i := range fd.CustomFields {
		if fd.CustomFields[i].SectionID == "" {
			fd.CustomFields[i].SectionID = models.DefaultSectionIDs[i%len(models.DefaultSectionIDs)]
		}
	}
}
