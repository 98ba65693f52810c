package config

import (
	"os"
	"path/filepath"

	"freezer-tracker/internal/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	path := utils.GetConfig("DB_PATH")
	if path == "" {
		path = "./data/freezer.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
