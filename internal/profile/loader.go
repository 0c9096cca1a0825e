package profile

import (
	"context"
	"maps"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/tcplika/internal/catalog"
	"github.com/vk/tcplika/internal/config"
	"github.com/vk/tcplika/internal/ctxlog"
	"github.com/vk/tcplika/internal/fsutil"
)

// endpointsAttr is the one attribute that is not an option name.
const endpointsAttr = "endpoints"

const profileExt = ".hcl"

// Profile is the decoded content of a profile file.
type Profile struct {
	Path      string
	Options   map[string]string
	Endpoints []string
}

// Load reads the profile at path. A directory is loaded as every *.hcl file
// below it, layered in lexical order so later files win. Every failure is
// returned as a *config.CommandLineError so it is reported like any other
// bad input.
func Load(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Profile loader started.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, config.Wrap(err, "Invalid formats of profile %s -- %s", path, err)
	}
	if !info.IsDir() {
		return loadFile(ctx, path)
	}

	files, err := fsutil.FindFilesByExtension(path, profileExt)
	if err != nil {
		return nil, config.Wrap(err, "Invalid formats of profile %s -- %s", path, err)
	}
	if len(files) == 0 {
		return nil, config.Errorf("Invalid formats of profile %s -- no %s files found", path, profileExt)
	}

	layered := &Profile{Path: path, Options: map[string]string{}}
	for _, file := range files {
		p, err := loadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		layered.Options, layered.Endpoints = layered.Merge(p.Options, p.Endpoints)
	}
	logger.Debug("Profile directory loaded.", "path", path, "files", len(files))
	return layered, nil
}

func loadFile(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, config.Wrap(diags, "Invalid formats of profile %s -- %s", path, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, config.Wrap(diags, "Invalid formats of profile %s -- %s", path, diags.Error())
	}

	p := &Profile{Path: path, Options: make(map[string]string, len(attrs))}

	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		attr := attrs[name]
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, config.Wrap(diags, "Invalid formats of profile %s -- %s", path, diags.Error())
		}

		if name == endpointsAttr {
			endpoints, err := decodeEndpoints(val)
			if err != nil {
				return nil, config.Wrap(err, "Invalid formats of profile %s -- %s must be a list of \"host:port\" strings (%s)", path, name, rangeOf(attr))
			}
			p.Endpoints = endpoints
			continue
		}

		if catalog.Lookup(name) == catalog.Profile {
			return nil, config.Errorf("Invalid formats of profile %s -- a profile cannot load another profile (%s)", path, rangeOf(attr))
		}

		raw, present, err := rawValue(name, val)
		if err != nil {
			return nil, config.Wrap(err, "Invalid formats of profile %s -- %s must be a string, number or bool (%s)", path, name, rangeOf(attr))
		}
		if present {
			p.Options[name] = raw
		}
	}

	logger.Debug("Profile loaded.", "path", path, "options", len(p.Options), "endpoints", len(p.Endpoints))
	return p, nil
}

// rawValue renders an attribute value the way it would appear on the
// command line. A bool on a switch decides whether the switch is present at
// all; a bool on any other option becomes ON or OFF.
func rawValue(name string, val cty.Value) (string, bool, error) {
	if val.IsNull() {
		return "", false, errNull
	}

	if val.Type() == cty.Bool {
		on := val.True()
		if kind := catalog.Lookup(name); kind != catalog.Unrecognized && !catalog.TakesValue(kind) {
			return "", on, nil
		}
		if on {
			return "ON", true, nil
		}
		return "OFF", true, nil
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", false, err
	}
	return str.AsString(), true, nil
}

func decodeEndpoints(val cty.Value) ([]string, error) {
	if val.IsNull() {
		return nil, errNull
	}
	list, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, err
	}
	var endpoints []string
	if err := gocty.FromCtyValue(list, &endpoints); err != nil {
		return nil, err
	}
	return endpoints, nil
}

func rangeOf(attr *hcl.Attribute) string {
	return attr.Range.String()
}
