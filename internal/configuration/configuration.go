package configuration

import (
	"strconv"
	"strings"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// ConfigProviderImpl reads configuration files and converts their values.
type ConfigProviderImpl struct {
	GenericConfigReader genericConfigProvider
}

// ReadGeneric reads the given configuration files into a map (map[key]value).
func (c *ConfigProviderImpl) ReadGeneric(filenames ...string) (envMap map[string]string, err error) {
	return c.GenericConfigReader.Read(filenames...)
}

// MapKeyToString returns the value of key or "" if it does not exist.
func (c *ConfigProviderImpl) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToInt returns the value of key as an integer or -1 if it does not
// exist or is not an integer.
func (c *ConfigProviderImpl) MapKeyToInt(envMap map[string]string, key string) int {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}

// MapKeyToBool returns the value of key as a boolean and whether it was set
// to a recognisable boolean at all.
func (c *ConfigProviderImpl) MapKeyToBool(envMap map[string]string, key string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(c.MapKeyToString(envMap, key))) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}
