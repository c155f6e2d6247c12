package flagext

import (
	"github.com/seqtils/seqtils/version"
	"github.com/spf13/pflag"
)

type versionValue version.Version

func newVersionValue(val version.Version, p *version.Version) *versionValue {
	*p = val
	return (*versionValue)(p)
}

func (v *versionValue) String() string { return version.Version(*v).String() }
func (v *versionValue) Set(s string) error {
	parsed, err := version.Parse(s)
	if err != nil {
		return err
	}
	*v = versionValue(parsed)
	return nil
}

func (v *versionValue) Type() string {
	return "version"
}

// VersionVar defines a version.Version flag with specified name, default value, and usage string.
// The argument p points to a version.Version variable in which to store the value of the flag.
func VersionVar(f *pflag.FlagSet, p *version.Version, name string, value version.Version, usage string) {
	f.VarP(newVersionValue(value, p), name, "", usage)
}

// VersionVarP is like VersionVar, but accepts a shorthand letter that can be used after a single dash.
func VersionVarP(f *pflag.FlagSet, p *version.Version, name, shorthand string, value version.Version, usage string) {
	f.VarP(newVersionValue(value, p), name, shorthand, usage)
}

// Version defines a version.Version flag with specified name, default value, and usage string.
// The return value is the address of a version.Version variable that stores the value of the flag.
func Version(f *pflag.FlagSet, name string, value version.Version, usage string) *version.Version {
	p := new(version.Version)
	VersionVarP(f, p, name, "", value, usage)
	return p
}
