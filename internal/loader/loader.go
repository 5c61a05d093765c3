// Package loader reads dotspec YAML spec files into documentation model
// trees. Each file holds one root module; members nest recursively with a
// kind discriminator.
package loader

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/dotspec/internal/errors"
	"github.com/conneroisu/dotspec/internal/model"
)

// specObject is the YAML shape of one object in a spec file.
type specObject struct {
	Kind      string         `yaml:"kind"`
	Name      string         `yaml:"name"`
	Location  specLocation   `yaml:"location"`
	Docstring string         `yaml:"docstring"`
	Members   []specObject   `yaml:"members"`
	Datatype  string         `yaml:"datatype"`
	Value     string         `yaml:"value"`
	Target    string         `yaml:"target"`
	Args      []specArgument `yaml:"args"`
	Return    string         `yaml:"return_type"`
	Modifiers []string       `yaml:"modifiers"`
	Bases     []string       `yaml:"bases"`
	Metaclass string         `yaml:"metaclass"`
}

type specLocation struct {
	Filename string `yaml:"filename"`
	Lineno   int    `yaml:"lineno"`
}

type specArgument struct {
	Name         string `yaml:"name"`
	Datatype     string `yaml:"datatype"`
	DefaultValue string `yaml:"default_value"`
}

var kinds = map[string]model.Kind{
	"module":      model.KindModule,
	"class":       model.KindClass,
	"function":    model.KindFunction,
	"data":        model.KindData,
	"indirection": model.KindIndirection,
}

// Load decodes one spec document into a module tree. The top-level object
// must be a module; the kind field may be omitted for it.
func Load(r io.Reader) (*model.Object, error) {
	var spec specObject
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, errors.NewIOError("SPEC_DECODE", "cannot decode spec document", err)
	}
	if spec.Kind == "" {
		spec.Kind = "module"
	}
	mod, err := convert(spec, "")
	if err != nil {
		return nil, err
	}
	if mod.Kind != model.KindModule {
		return nil, errors.NewValidationError("SPEC_NOT_MODULE",
			fmt.Sprintf("top-level object %q must be a module, got %s", mod.Name, mod.Kind))
	}
	mod.SyncHierarchy()
	return mod, nil
}

func convert(spec specObject, parent string) (*model.Object, error) {
	if spec.Name == "" {
		return nil, errors.NewValidationError("SPEC_NO_NAME",
			fmt.Sprintf("object under %q has no name", parent))
	}
	kind, ok := kinds[strings.ToLower(spec.Kind)]
	if !ok {
		return nil, errors.NewValidationError("SPEC_BAD_KIND",
			fmt.Sprintf("object %q has unknown kind %q", spec.Name, spec.Kind))
	}

	ob := &model.Object{
		Kind:       kind,
		Name:       spec.Name,
		Location:   model.Location{Filename: spec.Location.Filename, Lineno: spec.Location.Lineno},
		Docstring:  spec.Docstring,
		Datatype:   spec.Datatype,
		Value:      spec.Value,
		Target:     spec.Target,
		ReturnType: spec.Return,
		Modifiers:  spec.Modifiers,
		Bases:      spec.Bases,
		Metaclass:  spec.Metaclass,
	}
	for _, a := range spec.Args {
		ob.Args = append(ob.Args, model.Argument{
			Name: a.Name, Datatype: a.Datatype, DefaultValue: a.DefaultValue,
		})
	}

	if len(spec.Members) > 0 && !ob.HasMembers() {
		return nil, errors.NewValidationError("SPEC_LEAF_MEMBERS",
			fmt.Sprintf("%s %q cannot have members", strings.ToLower(kind.String()), spec.Name))
	}
	for _, m := range spec.Members {
		child, err := convert(m, spec.Name)
		if err != nil {
			return nil, err
		}
		ob.Members = append(ob.Members, child)
	}
	return ob, nil
}

// LoadFile reads one spec file.
func LoadFile(path string) (*model.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("SPEC_OPEN", "cannot open spec file", err).WithLocation(path, 0)
	}
	defer f.Close()

	mod, err := Load(f)
	if err != nil {
		var derr *errors.DotspecError
		if stderrors.As(err, &derr) && derr.FilePath == "" {
			derr.FilePath = path
		}
		return nil, err
	}
	return mod, nil
}

// LoadDir reads every .yml/.yaml file under root, skipping paths matching
// any exclude pattern (matched against the slash-separated relative path).
func LoadDir(root string, excludePatterns []string) ([]*model.Object, error) {
	var modules []*model.Object
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		if excluded(filepath.ToSlash(rel), excludePatterns) {
			return nil
		}
		mod, err := LoadFile(path)
		if err != nil {
			return err
		}
		modules = append(modules, mod)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return modules, nil
}

// LoadPaths loads spec files and directories into a single indexed root.
func LoadPaths(paths []string, excludePatterns []string) (*model.Root, error) {
	var modules []*model.Object
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.NewIOError("SPEC_STAT", "cannot access spec path", err).WithLocation(path, 0)
		}
		if info.IsDir() {
			mods, err := LoadDir(path, excludePatterns)
			if err != nil {
				return nil, err
			}
			modules = append(modules, mods...)
			continue
		}
		mod, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		modules = append(modules, mod)
	}
	if len(modules) == 0 {
		return nil, errors.NewValidationError("SPEC_NONE", "no spec files found")
	}
	return model.BuildRoot(modules)
}

func excluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := filepath.Match(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pattern, filepath.Base(rel)); err == nil && ok {
			return true
		}
	}
	return false
}
