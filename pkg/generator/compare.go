package generator

import (
	"go/parser"
	"go/scanner"
	"go/token"
	"slices"
)

// sameSource reports whether two Go files declare the same package
// and have the same token sequence after the import declarations.
// Comments are compared, layout is ignored.
func sameSource(a, b []byte) (bool, error) {
	ta, err := tokens(a)
	if err != nil {
		return false, err
	}
	tb, err := tokens(b)
	if err != nil {
		return false, err
	}
	return slices.Equal(ta, tb), nil
}

func tokens(src []byte) ([]string, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}
	start := f.Name.End()
	for _, d := range f.Decls {
		start = d.End()
	}
	body := src[fset.Position(start).Offset:]

	var errs scanner.ErrorList
	var s scanner.Scanner
	file := token.NewFileSet().AddFile("", -1, len(body))
	s.Init(file, body, func(pos token.Position, msg string) { errs.Add(pos, msg) }, scanner.ScanComments)

	r := []string{f.Name.Name}
	for {
		_, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		r = append(r, tok.String()+" "+lit)
	}
	return r, errs.Err()
}
