package config

import "os"

// Keys understood by the datadl tools.
const (
	DataDirKey  = "DATADL_DIR"
	LogLevelKey = "DATADL_LOG_LEVEL"
)

// DotenvFile is the dotenv file the CLI loads when present in the
// current directory.
const DotenvFile = ".datadl.env"

var configer Configer = &DotenvConfig{}

func SetConfig(c Configer) {
	configer = c
}

func GetConfig() Configer {
	return configer
}

// LoadFromDatadlDotenv loads .datadl.env when it exists. A missing file is
// not an error; configuration then comes from the process environment.
func LoadFromDatadlDotenv() error {
	if _, err := os.Stat(DotenvFile); err != nil {
		return nil
	}

	return configer.LoadFromPath(DotenvFile)
}

func GetKey(key string) string {
	return configer.GetKey(key)
}

func MustGetKey(key string) string {
	return configer.MustGetKey(key)
}

func GetKeyWithDefault(key, defaultValue string) string {
	return configer.GetKeyWithDefault(key, defaultValue)
}
