package configs

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strings"

	"riderservice/entity"

	"gorm.io/gorm"
)

// SeedRiders imports riders from a CSV file with name/email/phone columns
// (header match is case-insensitive). Rows missing name or email are
// skipped, as are rows whose email already exists, so re-running the seed
// never creates duplicates. The surviving rows are inserted in a single
// transaction; the count of inserted rows is returned. A missing file is a
// skip, not an error.
func SeedRiders(database *gorm.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("CSV not found: %s", path)
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return 0, err
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	log.Printf("Seeding from CSV: %s", path)
	added := 0
	err = database.Transaction(func(tx *gorm.DB) error {
		for {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}

			name := field(row, "name")
			email := field(row, "email")
			phone := field(row, "phone")
			if name == "" || email == "" {
				continue
			}

			var cnt int64
			if err := tx.Model(&entity.Rider{}).
				Where("email = ?", email).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				continue
			}

			rd := entity.Rider{Name: name, Email: email}
			if phone != "" {
				rd.Phone = &phone
			}
			if err := tx.Create(&rd).Error; err != nil {
				return err
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Inserted %d riders", added)
	return added, nil
}
