package version

// Version and GitRef are replaced by the release build:
//
//	go build -ldflags "-X github.com/c9s/ta/pkg/version.Version=v0.1.0 -X github.com/c9s/ta/pkg/version.GitRef=$(git rev-parse --short HEAD)"
var Version = "v0.1.0-dev"

var GitRef = ""

func String() string {
	if GitRef == "" {
		return Version
	}
	return Version + "-" + GitRef
}
