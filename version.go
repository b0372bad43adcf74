package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Info contains version and build information.
type Info struct {
	Version   string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	buildVersion := "unknown"
	buildTime := "unknown"
	goVer := runtime.Version()

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			buildVersion = info.Main.Version
		}

		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.time":
				buildTime = setting.Value
			}
		}
	}

	return Info{
		Version:   buildVersion,
		BuildTime: buildTime,
		GoVersion: goVer,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the build details, one "Label: value" line each.
func (i Info) String() string {
	return fmt.Sprintf("Built: %s\nGo version: %s\nPlatform: %s\n", i.BuildTime, i.GoVersion, i.Platform)
}

// versionText is the --version output. It is used as a cobra version
// template, so it must not contain template actions.
func versionText(programName string) string {
	info := Get()
	return programName + " version " + info.Version + "\n" + info.String()
}
