package generator

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/mandelsoft/drivebind/pkg/metadata"
)

var multi = jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true}

var shapes = map[metadata.Shape]string{
	metadata.SHAPE_SCALAR: "SHAPE_SCALAR",
	metadata.SHAPE_OBJECT: "SHAPE_OBJECT",
	metadata.SHAPE_LIST:   "SHAPE_LIST",
}

func (g *Generator) typeFile(t *metadata.TypeSpecification) *jen.File {
	name := t.Name
	cast := CastHelper(name)

	f := g.newFile(t.Package)
	f.Const().Id(ConstName(name)).Op("=").Lit(name)

	f.Comment(fmt.Sprintf("%s wraps the native type %s.", name, t.QualifiedName()))
	if t.Description != "" {
		f.Comment(t.Description)
	}
	if t.Abstract {
		f.Comment("The native type is abstract, views always refer to a more specific runtime type.")
	}
	f.Type().Id(name).Struct(jen.Qual(BINDING, "Base"))

	f.Comment(fmt.Sprintf("New%s creates a %s view of a native handle.", name, name))
	f.Func().Id("New"+name).Params(jen.Id("h").Qual(NATIVE, "Handle")).Params(jen.Op("*").Id(name), jen.Error()).Block(
		jen.Return(jen.Qual(BINDING, "NewAs").Types(jen.Op("*").Id(name)).Call(jen.Id("Registry"), jen.Id(ConstName(name)), jen.Id("h"))),
	)

	for _, p := range g.properties(t) {
		recv := jen.Id("o").Op("*").Id(name)
		switch p.Shape {
		case metadata.SHAPE_SCALAR:
			f.Comment(fmt.Sprintf("%s reads the native field %s.", p.Name, p.NativeField()))
			f.Func().Params(recv).Id(p.Name).Params().Params(jen.Id(p.Type), jen.Bool(), jen.Error()).Block(
				jen.Return(jen.Qual(BINDING, "Scalar").Types(jen.Id(p.Type)).Call(jen.Id("o"), jen.Lit(p.Name))),
			)
		case metadata.SHAPE_OBJECT:
			f.Comment(fmt.Sprintf("%s reads the native field %s (%s).", p.Name, p.NativeField(), p.Type))
			f.Func().Params(recv).Id(p.Name).Params().Params(jen.Qual(BINDING, "Object"), jen.Bool(), jen.Error()).Block(
				jen.Return(jen.Qual(BINDING, "Child").Call(jen.Id("o"), jen.Lit(p.Name))),
			)
		case metadata.SHAPE_LIST:
			f.Comment(fmt.Sprintf("%s reads the native field %s (list of %s).", p.Name, p.NativeField(), p.Type))
			f.Func().Params(recv).Id(p.Name).Params().Params(jen.Index().Qual(BINDING, "Object"), jen.Bool(), jen.Error()).Block(
				jen.Return(jen.Qual(BINDING, "List").Call(jen.Id("o"), jen.Lit(p.Name))),
			)
		}
	}

	f.Comment("Cast returns the cast helper of the view.")
	f.Func().Params(jen.Id("o").Op("*").Id(name)).Id("Cast").Params().Id(cast).Block(
		jen.Return(jen.Id(cast).Values(jen.Id("o"))),
	)

	f.Comment(fmt.Sprintf("%s provides a method for every valid cast target of %s.", cast, name))
	f.Type().Id(cast).Struct(jen.Id("o").Op("*").Id(name))
	for _, target := range g.graph.Entry(name).Targets() {
		f.Func().Params(jen.Id("c").Id(cast)).Id(CastMethod(target)).Params().Params(jen.Op("*").Id(target), jen.Error()).Block(
			jen.Return(jen.Qual(BINDING, "CastTo").Types(jen.Op("*").Id(target)).Call(jen.Id("c").Dot("o"), jen.Id(ConstName(target)))),
		)
	}
	return f
}

func (g *Generator) registryFile(pkg string) *jen.File {
	f := g.newFile(pkg)

	f.Comment(fmt.Sprintf("Registry is the static type table of the %s wrappers.", pkg))
	f.Var().Id("Registry").Op("=").Qual(BINDING, "MustNewRegistry").Call(jen.Lit(pkg), jen.Id("registryTable").Op("..."))

	f.Var().Id("registryTable").Op("=").Index().Qual(BINDING, "TypeSpec").CustomFunc(multi, func(list *jen.Group) {
		for _, t := range g.model.PackageTypes(pkg) {
			e := g.graph.Entry(t.Name)
			list.CustomFunc(multi, func(s *jen.Group) {
				s.Id("Name").Op(":").Id(ConstName(t.Name))
				if t.Namespace != "" {
					s.Id("Namespace").Op(":").Lit(t.Namespace)
				}
				if len(e.Ancestors) > 0 {
					s.Id("Ancestors").Op(":").Index().String().ValuesFunc(g.typeRefs(pkg, e.Ancestors))
				}
				if len(e.Descendants) > 0 {
					s.Id("Descendants").Op(":").Index().String().ValuesFunc(g.typeRefs(pkg, e.Descendants))
				}
				if len(t.Properties) > 0 {
					s.Id("Properties").Op(":").Index().Qual(BINDING, "PropertySpec").CustomFunc(multi, func(props *jen.Group) {
						for _, p := range t.Properties {
							props.ValuesFunc(g.propertySpec(pkg, p))
						}
					})
				}
				s.Id("Create").Op(":").Func().Params(jen.Id("b").Qual(BINDING, "Base")).Params(jen.Qual(BINDING, "Object"), jen.Error()).Block(
					jen.Return(jen.Op("&").Id(t.Name).Values(jen.Id("b")), jen.Nil()),
				)
			})
		}
	})
	return f
}

func (g *Generator) typeRefs(pkg string, names []string) func(*jen.Group) {
	return func(grp *jen.Group) {
		for _, n := range names {
			grp.Add(g.typeRef(pkg, n))
		}
	}
}

func (g *Generator) propertySpec(pkg string, p metadata.PropertySpecification) func(*jen.Group) {
	return func(grp *jen.Group) {
		grp.Id("Name").Op(":").Lit(p.Name)
		grp.Id("Field").Op(":").Lit(p.NativeField())
		grp.Id("Shape").Op(":").Qual(BINDING, shapes[p.Shape])
		if p.Shape == metadata.SHAPE_SCALAR {
			grp.Id("Type").Op(":").Lit(p.Type)
			return
		}
		grp.Id("Type").Op(":").Add(g.typeRef(pkg, p.Type))
		if t := g.model.GetType(p.Type); t.Package != pkg {
			grp.Id("Elements").Op(":").Qual(g.path(t.Package), "Registry")
		}
	}
}
