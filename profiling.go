package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/profile"
)

// profileModes maps the --profile argument to the pkg/profile mode it selects.
var profileModes = map[string]func(*profile.Profile){
	"cpu":   profile.CPUProfile,
	"heap":  profile.MemProfileHeap,
	"alloc": profile.MemProfileAllocs,
	"block": profile.BlockProfile,
	"mutex": profile.MutexProfile,
	"trace": profile.TraceProfile,
}

// resolutionProfile wraps the pkg/profile session that runs while targets resolve.
type resolutionProfile struct {
	mode    string
	session interface{ Stop() }
}

// startProfiling starts profiling target resolution in mode, writing the profile to
// dir. Unknown modes are an error listing the known ones.
func startProfiling(mode, dir string) (*resolutionProfile, error) {
	opt, ok := profileModes[strings.ToLower(mode)]
	if !ok {
		return nil, fmt.Errorf("unknown profile mode '%s': expected one of %s", mode, strings.Join(profileModeNames(), ", "))
	}

	opts := []func(*profile.Profile){opt, profile.ProfilePath(dir), profile.NoShutdownHook}
	if !*optDebugStdout {
		opts = append(opts, profile.Quiet)
	}
	log(LogCatgApp, "Profiling %s into %s\n", mode, dir)
	return &resolutionProfile{mode: mode, session: profile.Start(opts...)}, nil
}

// Stop ends the profile and writes it out. It may be called more than once.
func (p *resolutionProfile) Stop() {
	if p == nil || p.session == nil {
		return
	}
	p.session.Stop()
	p.session = nil
	log(LogCatgApp, "Stopped %s profile\n", p.mode)
}

func profileModeNames() []string {
	names := make([]string, 0, len(profileModes))
	for n := range profileModes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
