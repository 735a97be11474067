package configs

import (
	"log"
	"os"
	"strings"

	"gorm.io/gorm"
)

// RunSQLScript executes an optional raw migration script, one statement at
// a time. The script is split on ';'; blank and '--' comment statements are
// skipped, and a failing statement is logged and skipped rather than
// aborting the rest. Non-atomic on purpose. A missing file is not an error.
func RunSQLScript(database *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("%s not found, skipping.", path)
			return nil
		}
		return err
	}

	log.Printf("Running %s", path)
	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" || strings.HasPrefix(stmt, "--") {
			continue
		}
		if err := database.Exec(stmt).Error; err != nil {
			log.Printf("Skipping statement due to error: %v", err)
		}
	}
	log.Printf("%s executed", path)
	return nil
}
