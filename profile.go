package lager

import "github.com/0xalexb/lager/value"

// Profile names a configuration layer. Profiles are opaque, case-sensitive
// strings: "Debug" and "debug" are different layers. Two reserved names
// exist, Default and Global; everything else is user-defined.
type Profile string

// Default is the reserved profile holding baseline values.
const Default Profile = "default"

// Global is the reserved profile whose values apply regardless of the
// selected profile.
const Global Profile = "global"

// Collect associates dict with the profile, producing the single-entry
// profile→dictionary mapping that providers emit from Data.
func (p Profile) Collect(dict *value.Dict) map[Profile]*value.Dict {
	return map[Profile]*value.Dict{p: dict}
}

// String returns the profile name.
func (p Profile) String() string {
	return string(p)
}
