package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `home`
	ConfigFileType = `yaml`
	ConfigDir      = `/.zet-cli/`
	LogFile        = `home.log`
	EnvPrefix      = `HOMENOTES`
	NoteExtension  = `.md`
)
