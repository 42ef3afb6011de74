package config

import "os"

func IsDebug() bool {
	return os.Getenv("BANK_DEBUG") == "1"
}
