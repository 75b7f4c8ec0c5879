package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/ddkwork/golibrary/mylog"
	"github.com/pelletier/go-toml"

	"github.com/jeffwilliams/xtarget/internal/target"
)

var ConfDir string

func init() {
	if runtime.GOOS == "windows" {
		ConfDir = fmt.Sprintf("%s/.%s", os.Getenv("USERPROFILE"), programName)
	} else {
		ConfDir = fmt.Sprintf("%s/.%s", os.Getenv("HOME"), programName)
	}
}

func SettingsConfigFile() string {
	return fmt.Sprintf("%s/%s", ConfDir, "settings.toml")
}

// LoadSettings returns the default settings overlaid with the settings file. A
// missing settings file in the configuration directory is not an error.
func LoadSettings() target.Settings {
	settings := target.DefaultSettings()

	path := *optSettings
	if path == "" {
		path = SettingsConfigFile()
	}

	err := LoadSettingsFromFile(path, &settings)
	if errors.Is(err, fs.ErrNotExist) && *optSettings == "" {
		log(LogCatgConf, "No settings file %s; using defaults\n", path)
		return settings
	}
	mylog.Check(err)
	mylog.Check(settings.Validate())

	log(LogCatgConf, "Loaded settings from config file %s: %s\n", path, settings)
	return settings
}

func LoadSettingsFromFile(path string, settings *target.Settings) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer func() { mylog.Check(f.Close()) }()

	dec := toml.NewDecoder(f)
	return dec.Decode(settings)
}

func GenerateSampleSettings() string {
	return `# Sample xtarget settings file

# Width of the working buffer lines are matched in. A string target ending in a
# blank matches the blanks that pad a line out to this width.
#max-line-length=255

# Ignore case when matching strings and regular expressions.
#case-ignore=false

# Enable wildcards in string targets. arbchar-single matches any one character and
# arbchar-multi any run of characters.
#arbchar=false
#arbchar-single="?"
#arbchar-multi="$"

# Treat an unsigned number as a line number rather than a count of lines.
#numbers-absolute=false

# The most terms one target may hold.
#max-terms=32

# The columns searched by string and regexp targets and by BLANK, 1-based and
# inclusive. The default is the whole working width.
#[zone]
#start=1
#end=255
`
}
