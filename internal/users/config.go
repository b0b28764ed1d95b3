package users

import "codeberg.org/mutker/erroror"

const (
	defaultDirPerm = 0o755
	defaultDBPath  = "erroror-users.db"
)

type Config struct {
	DBPath string
}

func DefaultConfig() Config {
	return Config{
		DBPath: defaultDBPath,
	}
}

func (c Config) Validate() erroror.ErrorOr[erroror.Success] {
	if c.DBPath == "" {
		return erroror.FromError[erroror.Success](ErrInvalidDBPath)
	}

	return erroror.ResultSuccess
}
