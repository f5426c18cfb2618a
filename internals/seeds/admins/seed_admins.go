package admins

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hadirku_backend/internals/features/users/auth/model"
)

type AdminSeed struct {
	AdminName     string `json:"admin_name"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
}

func SeedAdminsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file admin:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("⚠️ Gagal membaca file JSON (%v), seeding admin dilewati", err)
		return
	}

	var inputs []AdminSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		email := strings.ToLower(strings.TrimSpace(data.AdminEmail))

		var existing model.AdminModel
		if err := db.Where("admin_email = ?", email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Admin dengan email '%s' sudah ada, dilewati.", email)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashed, err := bcrypt.GenerateFromPassword([]byte(data.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", email, err)
			continue
		}
		pwd := string(hashed)

		newAdmin := model.AdminModel{
			AdminName:     strings.TrimSpace(data.AdminName),
			AdminEmail:    email,
			AdminPassword: &pwd,
		}
		if err := db.Create(&newAdmin).Error; err != nil {
			log.Printf("❌ Gagal membuat admin '%s': %v", email, err)
			continue
		}
		log.Printf("✅ Admin '%s' dibuat.", email)
	}
}
