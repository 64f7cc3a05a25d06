package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// Configs представляет структуру конфигурации.
type Configs struct {
	Address       string `json:"address"`        // аналог переменной окружения BETS_SERVER_ADDRESS или флага -a
	LogLevel      string `json:"log_level"`      // аналог переменной окружения BETS_SERVER_LOG_LEVEL или флага -l
	DatabaseDSN   string `json:"database_dsn"`   // аналог переменной окружения BETS_SERVER_DATABASE_URL или флага -d
	SecretKey     string `json:"secret_key"`     // аналог переменной окружения BETS_SERVER_SECRET_KEY или флага -secret-key
	AdminEmail    string `json:"admin_email"`    // аналог переменной окружения BETS_SERVER_ADMIN_EMAIL или флага -admin-email
	AdminPassword string `json:"admin_password"` // аналог переменной окружения BETS_SERVER_ADMIN_PASSWORD или флага -admin-password
}

// ParseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func ParseConfigFile(configFileName string) (Configs, error) {
	var configs Configs
	f, err := os.Open(configFileName)
	if err != nil {
		return Configs{}, fmt.Errorf("open configuration file error: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	dec := json.NewDecoder(reader)
	err = dec.Decode(&configs)
	if err != nil {
		return Configs{}, fmt.Errorf("parse configuration file error: %w", err)
	}

	return configs, nil
}
