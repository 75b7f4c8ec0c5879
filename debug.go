package main

const (
	LogCatgApp    = "Application"
	LogCatgConf   = "Config"
	LogCatgTarget = "Target"
)

var debugLogCategories = []string{
	LogCatgApp,
	LogCatgConf,
	LogCatgTarget,
}
