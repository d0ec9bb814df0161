package bootstrap

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment is an immutable snapshot of the variables visible to a
// launched application. Factories receive it as an explicit parameter so
// the application never has to read process-global state.
type Environment map[string]string

// Get returns the value for key, or empty.
func (e Environment) Get(key string) string {
	return e[key]
}

// GetDefault returns the value for key, or def when unset or empty.
func (e Environment) GetDefault(key, def string) string {
	if v, ok := e[key]; ok && v != "" {
		return v
	}
	return def
}

// LoadEnvironment builds the snapshot the launcher hands to the application
// factory: the ambient process environment with env-file values layered on
// top. File values win over pre-existing variables of the same name.
//
// The file is also overloaded into the process environment so that anything
// reading os.Getenv (viper's AutomaticEnv included) observes the same
// precedence.
func LoadEnvironment(envFile string) (Environment, error) {
	env := Environment{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	if envFile == "" {
		return env, nil
	}

	fileVars, err := godotenv.Read(envFile)
	if err != nil {
		return nil, err
	}
	for k, v := range fileVars {
		env[k] = v
	}
	if err := godotenv.Overload(envFile); err != nil {
		return nil, err
	}

	return env, nil
}
