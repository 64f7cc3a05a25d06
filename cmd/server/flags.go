package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"bets/internal/server/config"
)

var (
	netAddr       string // адрес запуска сервиса
	databaseDsn   string // адрес базы данных
	logLevel      string // уровень логирования
	configFile    string // путь к файлу конфигурации
	secretKey     string // секретный ключ для создания JWT
	adminEmail    string // email учетной записи администратора
	adminPassword string // пароль учетной записи администратора
)

// parseVariables - функция для установки конфигурационных параметров приложения.
// Конфигурирование приложения с приоритетом в порядке убывания: значения флагов, значения из файла, значения переменных окружения.
func parseVariables() error {
	parseFlags()
	parseConfigFile()
	parseEnvironment()

	// Проверяю корректность установки глобальных переменных
	err := checkVariables()
	if err != nil {
		return fmt.Errorf("failed to set global variable, %w", err)
	}
	return nil
}

// parseFlags - функция для определения параметров конфигурации из флагов.
func parseFlags() {
	flag.StringVar(&netAddr, "a", "", "address and port to run server")

	// настройка флага для хранения учетных записей в базе данных
	flag.StringVar(&databaseDsn, "d", "", "database connection address") // по умолчанию адрес не задан

	flag.StringVar(&logLevel, "l", "", "log level")
	flag.StringVar(&configFile, "c", "", "name of configuration file")
	flag.StringVar(&secretKey, "secret-key", "", "secret key for generating JWT")
	flag.StringVar(&adminEmail, "admin-email", "", "email of the administrator account")
	flag.StringVar(&adminPassword, "admin-password", "", "password of the administrator account")

	// Вызов flag.Parse() для парсинга аргументов
	flag.Parse()
}

// parseConfigFile - функция для переопределения параметров конфигурации из файла конфигурации.
func parseConfigFile() {
	// если не указан файл конфигурации, то оставляю параметры запуска без изменения
	if configFile == "" {
		return
	}
	configs, err := config.ParseConfigFile(configFile)
	if err != nil {
		log.Fatalf("parse config file error: %v\n", err)
	}

	// обновляю параметры запуска если они не определены флагами
	if netAddr == "" {
		netAddr = configs.Address
	}
	if logLevel == "" {
		logLevel = configs.LogLevel
	}
	if databaseDsn == "" {
		databaseDsn = configs.DatabaseDSN
	}
	if secretKey == "" {
		secretKey = configs.SecretKey
	}
	if adminEmail == "" {
		adminEmail = configs.AdminEmail
	}
	if adminPassword == "" {
		adminPassword = configs.AdminPassword
	}
}

// parseEnvironment - функция для переопределения конфигурации из глобальных переменных.
// Переопределяет конфигурацию, если значения не установлены флагами или файлом конфигурации.
func parseEnvironment() {
	if netAddr == "" {
		netAddr = os.Getenv("BETS_SERVER_ADDRESS")
	}
	if databaseDsn == "" {
		databaseDsn = os.Getenv("BETS_SERVER_DATABASE_URL")
	}
	if logLevel == "" {
		logLevel = os.Getenv("BETS_SERVER_LOG_LEVEL")
	}
	if secretKey == "" {
		secretKey = os.Getenv("BETS_SERVER_SECRET_KEY")
	}
	if adminEmail == "" {
		adminEmail = os.Getenv("BETS_SERVER_ADMIN_EMAIL")
	}
	if adminPassword == "" {
		adminPassword = os.Getenv("BETS_SERVER_ADMIN_PASSWORD")
	}
}

// checkVariables - функция для проверки корректности установки глобальных переменных.
// Учетные данные администратора не обязательны - без них учетная запись
// администратора при старте не создается.
func checkVariables() error {
	if netAddr == "" {
		return fmt.Errorf("address and port to run server must be set")
	}
	if logLevel == "" {
		return fmt.Errorf("log level must be set")
	}
	if databaseDsn == "" {
		return fmt.Errorf("database connection address must be set")
	}
	if secretKey == "" {
		return fmt.Errorf("secret key must be set")
	}
	return nil
}
