package config

import "os"

func IsDebug() bool {
	return os.Getenv("ALICIA_DEBUG") == "1"
}
