package seeds

import (
	admins "hadirku_backend/internals/seeds/admins"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	admins.SeedAdminsFromJSON(db, "internals/seeds/admins/data_admins.json")
}
