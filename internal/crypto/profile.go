package crypto

import (
	"fmt"
	"strings"
)

// Profile selects the canonicalization rules used by the encoder.
type Profile string

const (
	// ProfileOAPS sorts object names by UTF-8 bytes, keeps strings as raw UTF-8 and
	// normalizes numbers to their exact decimal value. This is the default.
	ProfileOAPS Profile = "oaps"

	// ProfileJCS is RFC 8785 (JSON Canonicalization Scheme): object names are sorted by UTF-16
	// code units and numbers are serialized as IEEE-754 doubles.
	ProfileJCS Profile = "jcs"

	// ProfileLegacy matches Python's json.dumps with sort_keys=True and compact separators,
	// so hashes produced by the earlier Python proof tooling can be reproduced.
	ProfileLegacy Profile = "legacy"
)

// Profiles lists the supported profiles, default first.
var Profiles = []Profile{ProfileOAPS, ProfileJCS, ProfileLegacy}

// ParseProfile returns the profile with the given name (case-insensitive).
// An empty name selects ProfileOAPS.
func ParseProfile(name string) (Profile, error) {
	switch Profile(strings.ToLower(strings.TrimSpace(name))) {
	case "", ProfileOAPS:
		return ProfileOAPS, nil
	case ProfileJCS:
		return ProfileJCS, nil
	case ProfileLegacy:
		return ProfileLegacy, nil
	default:
		return "", fmt.Errorf("unknown canonicalization profile %q (must be one of %s)", name, profileNames())
	}
}

func profileNames() string {
	names := make([]string, len(Profiles))
	for i, p := range Profiles {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func (p Profile) String() string { return string(p) }
