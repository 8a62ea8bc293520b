package adapters

import (
	"errors"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"microdrop-launcher/internal/types"
)

// All ad hoc scraping of conda output lives in this file. Parse
// failures surface as MalformedOutput and callers degrade to an
// assume-success outcome instead of failing the launch flow.

// alreadyInstalledMarker appears verbatim in conda install output when
// the requested spec is already satisfied.
const alreadyInstalledMarker = "# All requested packages already installed."

var (
	// Progress records interleaved with install output, e.g.
	// {"maxval": 133256, "finished": false, "fetch": "microdrop-laun", "progress": 0}
	creProgressLine = regexp.MustCompile(`\{"maxval":[^,]+,\s*"finished":[^,]+,\s*"fetch":\s*[^,]+,\s*"progress":[^}]+\}`)

	// The NEW-packages block of human-readable install output. Each
	// entry is "name: version-build".
	creInstallBlock         = regexp.MustCompile(`(?s)The following NEW packages will be INSTALLED:\s+(.*?)\s+Linking packages`)
	creInstallBlockNoAnchor = regexp.MustCompile(`(?s)The following NEW packages will be INSTALLED:\s+(.*)`)
	creInstallEntry         = regexp.MustCompile(`(\S+):\s+(\S+)-[^-\s]+`)
)

// StripNoise removes known log noise from conda output: menuinst INFO
// lines and JSON progress records.
func StripNoise(output string) string {
	var kept []string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "INFO") {
			continue
		}
		if creProgressLine.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// ParseInstallOutput extracts the install summary from captured conda
// install output, which may be the human-readable transaction report or
// a JSON action log, interleaved with noise.
//
// On malformed structured output it returns a summary with Assumed set
// together with a MalformedOutput error; callers treat the install as
// succeeded with unknown dependency details.
func ParseInstallOutput(output string) (types.InstallSummary, error) {
	cleaned := StripNoise(output)

	if strings.Contains(cleaned, alreadyInstalledMarker) {
		return types.InstallSummary{AlreadyInstalled: true}, nil
	}

	if strings.Contains(cleaned, "The following NEW packages will be INSTALLED") {
		block := creInstallBlock.FindStringSubmatch(cleaned)
		if block == nil {
			block = creInstallBlockNoAnchor.FindStringSubmatch(cleaned)
		}
		if block != nil {
			var packages []types.InstalledDependency
			for _, entry := range creInstallEntry.FindAllStringSubmatch(block[1], -1) {
				packages = append(packages, types.InstalledDependency{
					Package: entry[1],
					Version: entry[2],
				})
			}
			if len(packages) > 0 {
				return types.InstallSummary{Packages: packages}, nil
			}
		}
		return types.InstallSummary{Assumed: true},
			types.NewMalformedOutput(errors.New("unparseable NEW packages block"))
	}

	if linked := gjson.Get(cleaned, "actions.LINK"); linked.IsArray() {
		var packages []types.InstalledDependency
		for _, entry := range linked.Array() {
			name := entry.Get("name").String()
			version := entry.Get("version").String()
			if name == "" || version == "" {
				continue
			}
			packages = append(packages, types.InstalledDependency{
				Package: name,
				Version: version,
			})
		}
		return types.InstallSummary{Packages: packages}, nil
	}

	return types.InstallSummary{Assumed: true},
		types.NewMalformedOutput(errors.New("no recognizable install summary"))
}

// ParseSearchOutput extracts version info for pkg from conda search
// --json output. Versions keep the channel's reported order
// (ascending); the installed flag is taken from the entries when
// present, nil otherwise.
func ParseSearchOutput(pkg string, output string) (types.PackageVersionInfo, error) {
	cleaned := strings.TrimSpace(StripNoise(output))
	if !gjson.Valid(cleaned) {
		return types.PackageVersionInfo{},
			types.NewMalformedOutput(errors.New("search output is not valid JSON"))
	}
	entries := gjson.Get(cleaned, escapeGJSONKey(pkg))
	if !entries.Exists() {
		// Some conda releases nest results under "result.pkgs".
		entries = gjson.Get(cleaned, "result.pkgs")
	}
	if !entries.IsArray() {
		return types.PackageVersionInfo{},
			types.NewMalformedOutput(errors.New("search output has no entry list for " + pkg))
	}

	info := types.PackageVersionInfo{Package: pkg}
	for _, entry := range entries.Array() {
		version := entry.Get("version").String()
		if version == "" {
			continue
		}
		if name := entry.Get("name").String(); name != "" && name != pkg {
			continue
		}
		info.Available = append(info.Available, version)
		if entry.Get("installed").Bool() {
			installed := version
			info.Installed = &installed
		}
	}
	return info, nil
}

// ParseListOutput extracts the installed version of pkg from conda list
// --json output, "" when the package is absent.
func ParseListOutput(pkg string, output string) (string, error) {
	cleaned := strings.TrimSpace(StripNoise(output))
	if !gjson.Valid(cleaned) {
		return "", types.NewMalformedOutput(errors.New("list output is not valid JSON"))
	}
	parsed := gjson.Parse(cleaned)
	if !parsed.IsArray() {
		return "", types.NewMalformedOutput(errors.New("list output is not an array"))
	}
	var version string
	parsed.ForEach(func(_, entry gjson.Result) bool {
		if entry.Get("name").String() == pkg {
			version = entry.Get("version").String()
			return false
		}
		return true
	})
	return version, nil
}

// escapeGJSONKey escapes path separators in a package name so it is
// looked up as a literal JSON key.
func escapeGJSONKey(key string) string {
	replacer := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return replacer.Replace(key)
}
