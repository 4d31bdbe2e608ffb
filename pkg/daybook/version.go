package daybook

// Version is the daybook release version. Overridable at build time:
//
//	go build -ldflags "-X github.com/slatedeck/daybook/pkg/daybook.Version=v0.4.0"
var Version = "0.3.0"
