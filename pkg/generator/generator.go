// Package generator creates Go wrapper packages from native type metadata.
//
// For every target package of the metadata a directory is generated
// containing one file per type (type name constant, wrapper struct,
// constructor, property accessors and cast helper) and a registry file
// holding the static cast and property table. The metadata digest is
// stored next to the generated files to detect stale bindings.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"

	"github.com/mandelsoft/drivebind/pkg/hierarchy"
	"github.com/mandelsoft/drivebind/pkg/metadata"
	"github.com/mandelsoft/drivebind/pkg/utils"
)

const (
	HEADER        = "Code generated by bindgen. DO NOT EDIT."
	REGISTRY_FILE = "zz_generated_registry.go"
	DIGEST_FILE   = ".digest"

	BINDING = "github.com/mandelsoft/drivebind/pkg/binding"
	NATIVE  = "github.com/mandelsoft/drivebind/pkg/native"
)

var ErrStale = errors.New("generated bindings are stale")

// reserved are the method names of generated wrappers not
// available for property accessors.
var reserved = []string{"Handle", "Type", "TypeName", "RuntimeType", "String", "Cast"}

type Generator struct {
	model  *metadata.Model
	graph  *hierarchy.Graph
	base   string
	digest string
	fs     vfs.FileSystem
}

// New prepares a generator for a model. base is the import path
// of the directory the packages are generated into.
func New(m *metadata.Model, base string, fss ...vfs.FileSystem) (*Generator, error) {
	err := metadata.Validate(m)
	if err != nil {
		return nil, err
	}
	for _, t := range m.Types {
		for _, p := range t.Properties {
			if slices.Contains(reserved, p.Name) {
				return nil, fmt.Errorf("type %q: property name %q is reserved", t.Name, p.Name)
			}
		}
	}
	err = checkImports(m)
	if err != nil {
		return nil, err
	}
	g, err := hierarchy.NewGraph(m)
	if err != nil {
		return nil, err
	}
	d, err := metadata.Digest(m)
	if err != nil {
		return nil, err
	}
	return &Generator{
		model:  m,
		graph:  g,
		base:   strings.TrimSuffix(base, "/"),
		digest: d,
		fs:     utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...),
	}, nil
}

func (g *Generator) Digest() string {
	return g.digest
}

// Files returns the names of all files generated for a package.
func (g *Generator) Files(pkg string) []string {
	var r []string
	for _, t := range g.model.PackageTypes(pkg) {
		r = append(r, FileName(t.Name))
	}
	return append(r, REGISTRY_FILE, DIGEST_FILE)
}

// Generate writes all packages into dir.
func (g *Generator) Generate(dir string) error {
	for _, pkg := range g.model.Packages() {
		err := g.generatePackage(dir, pkg)
		if err != nil {
			return fmt.Errorf("package %q: %w", pkg, err)
		}
	}
	return nil
}

// Check verifies that the generated packages in dir exist and have
// the code Generate would produce now. The layout of the files is
// not compared. Stale output is reported with ErrStale.
func (g *Generator) Check(dir string) error {
	for _, pkg := range g.model.Packages() {
		pdir := path.Join(dir, pkg)
		data, err := vfs.ReadFile(g.fs, path.Join(pdir, DIGEST_FILE))
		if err != nil {
			if errors.Is(err, vfs.ErrNotExist) {
				return fmt.Errorf("%w: package %q not generated", ErrStale, pkg)
			}
			return err
		}
		if d := strings.TrimSpace(string(data)); d != g.digest {
			return fmt.Errorf("%w: package %q generated for digest %s, metadata has %s", ErrStale, pkg, d, g.digest)
		}

		files, err := g.render(pkg)
		if err != nil {
			return fmt.Errorf("package %q: %w", pkg, err)
		}
		for _, n := range utils.OrderedMapKeys(files) {
			data, err := vfs.ReadFile(g.fs, path.Join(pdir, n))
			if err != nil {
				if errors.Is(err, vfs.ErrNotExist) {
					return fmt.Errorf("%w: package %q: file %q missing", ErrStale, pkg, n)
				}
				return err
			}
			if n == DIGEST_FILE {
				continue
			}
			same, err := sameSource(data, files[n])
			if err != nil {
				return fmt.Errorf("%w: package %q: file %q: %s", ErrStale, pkg, n, err)
			}
			if !same {
				return fmt.Errorf("%w: package %q: file %q modified", ErrStale, pkg, n)
			}
		}
		outdated, err := g.outdated(pdir, g.Files(pkg))
		if err != nil {
			return err
		}
		if len(outdated) > 0 {
			return fmt.Errorf("%w: package %q: outdated file %q", ErrStale, pkg, path.Base(outdated[0]))
		}
	}
	return nil
}

// render creates the content of all files of a package.
func (g *Generator) render(pkg string) (map[string][]byte, error) {
	files := map[string]*jen.File{}
	for _, t := range g.model.PackageTypes(pkg) {
		files[FileName(t.Name)] = g.typeFile(t)
	}
	files[REGISTRY_FILE] = g.registryFile(pkg)

	r := map[string][]byte{}
	for n, f := range files {
		var buf bytes.Buffer
		err := f.Render(&buf)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n, err)
		}
		r[n] = buf.Bytes()
	}
	r[DIGEST_FILE] = []byte(g.digest + "\n")
	return r, nil
}

func (g *Generator) generatePackage(dir, pkg string) error {
	pdir := path.Join(dir, pkg)
	err := g.fs.MkdirAll(pdir, 0o755)
	if err != nil {
		return err
	}

	files, err := g.render(pkg)
	if err != nil {
		return err
	}
	for _, n := range utils.OrderedMapKeys(files) {
		if n == DIGEST_FILE {
			continue
		}
		err = vfs.WriteFile(g.fs, path.Join(pdir, n), files[n], 0o644)
		if err != nil {
			return err
		}
		log.Trace("generated {{file}}", "file", path.Join(pdir, n))
	}
	err = g.cleanup(pdir, g.Files(pkg))
	if err != nil {
		return err
	}
	// the digest is written last to mark a complete generation
	err = vfs.WriteFile(g.fs, path.Join(pdir, DIGEST_FILE), files[DIGEST_FILE], 0o644)
	if err != nil {
		return err
	}
	log.Info("generated package {{package}} with {{amount}} types", "package", pkg, "amount", len(files)-2)
	return nil
}

// cleanup removes generated files of types no longer present.
func (g *Generator) cleanup(dir string, keep []string) error {
	list, err := g.outdated(dir, keep)
	if err != nil {
		return err
	}
	for _, p := range list {
		log.Info("removing outdated {{file}}", "file", p)
		err = g.fs.Remove(p)
		if err != nil {
			return err
		}
	}
	return nil
}

// outdated lists the generated files in dir not contained in keep.
// Files without the generated header are never reported.
func (g *Generator) outdated(dir string, keep []string) ([]string, error) {
	list, err := vfs.ReadDir(g.fs, dir)
	if err != nil {
		return nil, err
	}
	var r []string
	for _, fi := range list {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ".go") || slices.Contains(keep, fi.Name()) {
			continue
		}
		p := path.Join(dir, fi.Name())
		data, err := vfs.ReadFile(g.fs, p)
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(string(data), "// "+HEADER) {
			r = append(r, p)
		}
	}
	slices.Sort(r)
	return r, nil
}

// checkImports rejects models whose property references would
// make the generated packages import each other.
func checkImports(m *metadata.Model) error {
	imports := map[string][]string{}
	for _, t := range m.Types {
		for _, p := range t.Properties {
			e := m.GetType(p.Type)
			if e != nil && e.Package != t.Package && !slices.Contains(imports[t.Package], e.Package) {
				imports[t.Package] = append(imports[t.Package], e.Package)
			}
		}
	}
	for _, pkg := range utils.OrderedMapKeys(imports) {
		if err := importCycle(imports, pkg); err != nil {
			return err
		}
	}
	return nil
}

func importCycle(imports map[string][]string, pkg string, stack ...string) error {
	if c := utils.Cycle(pkg, stack...); c != nil {
		return fmt.Errorf("import cycle between generated packages: %s", strings.Join(c, "->"))
	}
	deps := slices.Clone(imports[pkg])
	slices.Sort(deps)
	for _, i := range deps {
		if err := importCycle(imports, i, append(stack, pkg)...); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) path(pkg string) string {
	return g.base + "/" + pkg
}

func (g *Generator) newFile(pkg string) *jen.File {
	f := jen.NewFilePathName(g.path(pkg), pkg)
	f.HeaderComment(HEADER)
	f.ImportName(BINDING, "binding")
	f.ImportName(NATIVE, "native")
	return f
}

// typeRef returns the constant of a type name as seen from pkg.
func (g *Generator) typeRef(pkg, typ string) *jen.Statement {
	t := g.model.GetType(typ)
	if t.Package == pkg {
		return jen.Id(ConstName(typ))
	}
	return jen.Qual(g.path(t.Package), ConstName(typ))
}

// properties returns all properties of a type including the
// inherited ones, sorted by name. The nearest declaration wins.
func (g *Generator) properties(t *metadata.TypeSpecification) []*metadata.PropertySpecification {
	found := map[string]*metadata.PropertySpecification{}

	anc := g.graph.Ancestors(t.Name)
	for i := len(anc) - 1; i >= 0; i-- {
		a := g.model.GetType(anc[i])
		for j := range a.Properties {
			found[a.Properties[j].Name] = &a.Properties[j]
		}
	}
	for j := range t.Properties {
		found[t.Properties[j].Name] = &t.Properties[j]
	}
	return utils.TransformSlice(utils.OrderedMapKeys(found), func(n string) *metadata.PropertySpecification {
		return found[n]
	})
}
