// Command datcli inspects and manipulates DAT files from the command
// line: print debug information about a file or a single object, extract
// one root into a standalone file, or insert every root of one file into
// another.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlexanderHarrison/cdat/dat"
	"github.com/AlexanderHarrison/cdat/internal/fileio"
)

const usage = `usage:
    datcli debug <dat file> [offset]
        Print information about a dat file, or about a single object if
        a hex offset is given.
    datcli extract <dat file> <root name>
        Extract a root from a dat file into its own file.
    datcli insert <dat file> <input dat file>
        Copy roots from one dat file into another.
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Print(usage)
		return
	}

	var err error
	switch args[0] {
	case "debug":
		err = runDebug(args[1:])
	case "extract":
		err = runExtract(args[1:])
	case "insert":
		err = runInsert(args[1:])
	default:
		flag.Usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func readDat(path string) (*dat.Container, error) {
	buf, closeFn, err := fileio.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer closeFn()

	c, err := dat.Import(buf)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	return c, nil
}

func writeDat(c *dat.Container, path string) error {
	buf, err := c.Export()
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	if err := fileio.WriteFile(path, buf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func findRoot(c *dat.Container, name string) (dat.RootInfo, error) {
	for i := 0; i < c.RootCount(); i++ {
		root, _ := c.Root(i)
		sym, err := c.Symbol(root.SymbolOffset)
		if err != nil {
			continue
		}
		if sym == name {
			return root, nil
		}
	}
	return dat.RootInfo{}, fmt.Errorf("root %q not found", name)
}

func runDebug(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: datcli debug <dat file> [offset]")
	}
	c, err := readDat(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		debugPrintFile(c)
		return nil
	}

	offset, err := parseHexOffset(args[1])
	if err != nil {
		return err
	}
	return debugPrintObject(c, offset)
}

func debugPrintFile(c *dat.Container) {
	fmt.Printf("data_size:   0x%x\n", c.DataSize())
	fmt.Printf("reloc_count: %d\n", c.RelocCount())
	fmt.Printf("root_count:  %d\n", c.RootCount())
	fmt.Printf("extern_count: %d\n", c.ExternCount())
	fmt.Printf("object_count: %d\n", c.ObjectCount())

	for i := 0; i < c.RootCount(); i++ {
		root, _ := c.Root(i)
		name, err := c.Symbol(root.SymbolOffset)
		if err != nil {
			name = "<invalid symbol>"
		}
		fmt.Printf("  root[%d]: 0x%x  %s\n", i, root.DataOffset, name)
	}

	for i := 0; i < c.ExternCount(); i++ {
		extern, _ := c.Extern(i)
		name, err := c.Symbol(extern.SymbolOffset)
		if err != nil {
			name = "<invalid symbol>"
		}
		fmt.Printf("  extern[%d]: 0x%x  %s\n", i, extern.DataOffset, name)
	}
}

func debugPrintObject(c *dat.Container, offset uint32) error {
	start, size, err := c.ObjLocation(offset)
	if err != nil {
		return fmt.Errorf("no object at offset 0x%x: %w", offset, err)
	}

	end := start + size
	for i := start; i+4 <= end; i += 4 {
		word, err := c.ReadU32(i)
		if err != nil {
			return err
		}

		if c.IsRelocSite(i) {
			if refStart, refSize, err := c.ObjLocation(word); err == nil {
				fmt.Printf("%06x  %8x  -> 0x%x-0x%x (0x%x)\n", i, word, refStart, refStart+refSize, refSize)
				continue
			}
		}
		fmt.Printf("%06x  %8x\n", i, word)
	}

	fmt.Printf("OBJECT 0x%x-0x%x (0x%x)\n", start, end, size)
	return nil
}

func parseHexOffset(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q: %w", s, err)
	}
	return uint32(v), nil
}

func runExtract(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: datcli extract <dat file> <root name>")
	}
	path, rootName := args[0], args[1]

	src, err := readDat(path)
	if err != nil {
		return err
	}

	root, err := findRoot(src, rootName)
	if err != nil {
		return err
	}

	out := dat.New()
	copiedRoot, err := dat.ObjCopy(out, src, root.DataOffset)
	if err != nil {
		return fmt.Errorf("copying root %q: %w", rootName, err)
	}
	if err := out.RootAdd(0, copiedRoot, rootName); err != nil {
		return fmt.Errorf("adding root %q: %w", rootName, err)
	}

	return writeDat(out, rootName+".dat")
}

func runInsert(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: datcli insert <dat file> <input dat file>")
	}
	dstPath, srcPath := args[0], args[1]

	dst, err := readDat(dstPath)
	if err != nil {
		return err
	}
	src, err := readDat(srcPath)
	if err != nil {
		return err
	}

	rootCount := src.RootCount()
	for i := 0; i < rootCount; i++ {
		root, _ := src.Root(i)
		name, err := src.Symbol(root.SymbolOffset)
		if err != nil {
			return fmt.Errorf("reading symbol for root %d: %w", i, err)
		}

		copiedRoot, err := dat.ObjCopy(dst, src, root.DataOffset)
		if err != nil {
			return fmt.Errorf("copying root %q: %w", name, err)
		}
		if err := dst.RootAdd(dst.RootCount(), copiedRoot, name); err != nil {
			return fmt.Errorf("adding root %q: %w", name, err)
		}
	}

	return writeDat(dst, dstPath)
}
