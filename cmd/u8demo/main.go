/*
Command u8demo walks through the features of package u8str on the console.

Usage:

	u8demo [-in test_in.txt] [-out test_out.txt] [-trace Error]

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/u8str"
	"github.com/npillmayer/u8str/codec"
	"github.com/npillmayer/u8str/console"
	"github.com/npillmayer/u8str/metrics"
	"github.com/npillmayer/u8str/textfile"
)

const unicodeText = "!ثابت ثقيلa䷀bcdefghijklmnoöpqrsßtuüvwxyzこんにちは世界！😊"

var label = color.New(color.FgBlue, color.Bold)

func main() {
	inName := flag.String("in", "test_in.txt", "text file to read")
	outName := flag.String("out", "test_out.txt", "text file to write")
	level := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*level))
	//
	if err := console.Setup(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(*inName, *outName); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "u8demo: %v\n", err)
		os.Exit(2)
	}
}

func traceLevel(name string) tracing.TraceLevel {
	switch name {
	case "Debug":
		return tracing.LevelDebug
	case "Info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

func run(inName, outName string) error {
	text := []byte(unicodeText)
	fmt.Printf("%q %d\n", unicodeText, len(text))
	for i, off := 0, 0; off < len(text); i++ {
		size := codec.CharSize(text[off])
		c, err := codec.Decode(text[off:])
		if err != nil {
			return err
		}
		fmt.Printf("%d: '%s' (%d -> %d) ", i, text[off:off+size], off, size)
		if _, err := codec.WriteScalar(os.Stdout, c); err != nil {
			return err
		}
		fmt.Println()
		off += size
	}
	if err := indexing(text); err != nil {
		return err
	}
	if err := building(); err != nil {
		return err
	}
	if err := casing(); err != nil {
		return err
	}
	if err := files(inName, outName); err != nil {
		return err
	}
	label.Print("columns: ")
	fmt.Printf("😊=%d, A=%d, line width=%d\n",
		codec.ColumnCount([]byte("😊")), codec.ScalarColumns('A'), console.LineWidth())
	return nil
}

func indexing(text []byte) error {
	c, err := codec.CharAt(text, 48)
	if err != nil {
		return err
	}
	llama := []byte("llama💬llama")
	d, err := codec.CharAt(llama, 5)
	if err != nil {
		return err
	}
	label.Print("index: ")
	fmt.Printf("%c %c  %d\n", c, d, codec.CharCount(llama))
	return nil
}

func building() error {
	s0 := u8str.FromString("hello😊world")
	if err := s0.InsertStringAt(0, "llama💬"); err != nil {
		return err
	}
	if err := s0.InsertStringAt(6, "drama "); err != nil {
		return err
	}
	if err := s0.InsertFmtAt(12, "big ol testo, %d, %f, ", 100, 50.5); err != nil {
		return err
	}
	if err := s0.InsertFmt(" large literal %p\n", s0); err != nil {
		return err
	}
	label.Print("string0: ")
	fmt.Print(s0)
	s3 := u8str.FromString("Ñoo")
	for _, c := range []rune{'ß', 0x00df, 's'} {
		if err := s3.InsertScalar(c); err != nil {
			return err
		}
	}
	label.Print("string3: ")
	fmt.Printf("'%s'\n", s3)
	var mem [codec.UTFMax]byte
	for i, c := range s3.All() {
		n, err := codec.Encode(c, mem[:])
		if err != nil {
			return err
		}
		fmt.Printf("%d:%d:%s\n", i, c, mem[:n])
	}
	words, err := metrics.Count(s0, 0, s0.CharCount(), metrics.Words())
	if err != nil {
		return err
	}
	label.Print("words in string0: ")
	fmt.Println(words)
	return nil
}

func casing() error {
	s1 := u8str.FromString("BIG LETTERS ÀÈÌÒÙ ÁÉÍÓÚÝ")
	s2 := u8str.FromString("lil letters àèìòù áéíóúý")
	label.Println("to_lower:")
	fmt.Printf("%s\n%s\n\n", s1.ToLower(), s2.ToLower())
	label.Println("to_upper:")
	fmt.Printf("%s\n%s\n\n", s1.ToUpper(), s2.ToUpper())
	label.Println("casefold:")
	fmt.Printf("%s\n%s\n\n", s1.Casefold(), s2.Casefold())
	return nil
}

func files(inName, outName string) error {
	for ch, err := range textfile.Chars(inName) {
		if err != nil {
			return err
		}
		fmt.Printf("Read char from file: '%s'\n", ch)
	}
	s4, err := textfile.Load(inName)
	if err != nil {
		return err
	}
	fmt.Printf("Read file to string: '%s'\n", s4)
	s5 := u8str.FromString("Hello world 😊\nllama llama llama 💬\ndrÀmÀ drÀmÀ drÀmÀ\nÑooß")
	if err := textfile.Store(s5, outName); err != nil {
		return err
	}
	fmt.Printf("Wrote file to %s\n", outName)
	return nil
}
