package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mandelsoft/goutils/sliceutils"
	"sigs.k8s.io/yaml"
)

// Output prints elements in the given format. A single
// element is printed without list if multi is false.
func Output[E any](w io.Writer, format string, list []E, multi bool) error {
	var elems any = list
	if !multi && len(list) == 1 {
		elems = list[0]
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml":
		data, err := yaml.Marshal(elems)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s", string(data))
	case "json":
		data, err := json.Marshal(elems)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n", string(data))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

func PrintTable(w io.Writer, columns []string, rows [][]string) error {
	if len(rows) == 0 {
		fmt.Fprintf(w, "no entries found\n")
		return nil
	}
	max := make([]int, len(columns))
	for i, s := range columns {
		max[i] = len(s)
	}
	for _, cols := range rows {
		for i, s := range cols {
			if max[i] < len(s) {
				max[i] = len(s)
			}
		}
	}

	f := formatString(max)
	printLine(w, columns, f)
	for _, cols := range rows {
		printLine(w, cols, f)
	}
	return nil
}

func printLine(w io.Writer, cols []string, msg string) {
	fmt.Fprintf(w, "%s\n", strings.TrimRight(fmt.Sprintf(msg, sliceutils.Convert[any](cols)...), " "))
}

func formatString(max []int) string {
	msg := ""
	for _, l := range max {
		msg += fmt.Sprintf("%%-%ds ", l)
	}
	return msg[:len(msg)-1]
}
