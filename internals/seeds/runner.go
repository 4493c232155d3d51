package seeds

import (
	"log"

	"gorm.io/gorm"

	"healthcard_backend/internals/configs"
	form "healthcard_backend/internals/seeds/form"
)

const defaultFormSeedFile = "internals/seeds/form/data_form.json"

// RunAllSeeds dijalankan saat boot kalau SEED_ON_BOOT=true.
func RunAllSeeds(db *gorm.DB) {
	//* Form (levels, sublevels, questions, options)
	path := configs.GetEnv("SEED_FILE", defaultFormSeedFile)
	if err := form.SeedFormFromJSON(db, path); err != nil {
		log.Fatalf("❌ Gagal seed form: %v", err)
	}
}
