package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/linefill/hyphenate"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	engine *hyphenate.Engine
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		args := strings.Fields(line)
		cmd, ok := commandFn[strings.ToLower(args[0])]
		if !ok {
			cmd = helpOp
		}
		err, quit := cmd(intp, args[1:])
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

var commandFn map[string]func(*Intp, []string) (error, bool)

func init() {
	commandFn = map[string]func(*Intp, []string) (error, bool){
		"quit":       quitOp,
		"help":       helpOp,
		"hyphenate":  hyphenateOp,
		"hy":         hyphenateOp,
		"breaks":     breaksOp,
		"exceptions": exceptionsOp,
		"hw":         addExceptionOp,
		"threshold":  thresholdOp,
		"stats":      statsOp,
	}
}

func quitOp(intp *Intp, args []string) (error, bool) {
	return nil, true
}

func helpOp(intp *Intp, args []string) (error, bool) {
	pterm.Info.Println("Commands")
	pterm.Println(`
	hyphenate <word>...     show hyphenation points of words
	breaks <word>           show break candidates and the strategy which found them
	exceptions [prefix]     list exception words
	hw <word>...            add exceptions, e.g. "pre-sent"
	threshold [n]           show or set the digram threshold
	stats                   show table sizes
	quit                    leave the shell
	`)
	return nil, false
}

func hyphenateOp(intp *Intp, args []string) (error, bool) {
	if len(args) == 0 {
		return errors.New("usage: hyphenate <word>..."), false
	}
	data := [][]string{
		{"Word", "Hyphenated", "Breaks"},
	}
	for _, word := range args {
		breaks := intp.engine.FindBreaks([]rune(word))
		data = append(data, []string{
			word,
			intp.engine.HyphenationString(word),
			fmt.Sprintf("%v", breaks.Offsets()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func breaksOp(intp *Intp, args []string) (error, bool) {
	if len(args) != 1 {
		return errors.New("usage: breaks <word>"), false
	}
	breaks := intp.engine.FindBreaks([]rune(args[0]))
	tracer().Debugf("breaks of %q: %v", args[0], breaks)
	data := [][]string{
		{"Offset", "Found by"},
	}
	for _, off := range breaks.Offsets() {
		src, _ := breaks.Source(off)
		data = append(data, []string{strconv.Itoa(off), src.String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	var tried []string
	for _, src := range []hyphenate.BreakSource{hyphenate.ExceptionBreak,
		hyphenate.SuffixBreak, hyphenate.DigramBreak} {
		if breaks.Tried(src) {
			tried = append(tried, src.String())
		}
	}
	pterm.Printf("strategies tried: %s\n", strings.Join(tried, ", "))
	return nil, false
}

func exceptionsOp(intp *Intp, args []string) (error, bool) {
	prefix := ""
	if len(args) > 0 {
		prefix = strings.ToLower(args[0])
	}
	data := [][]string{
		{"Exception", "Origin"},
	}
	for _, word := range intp.engine.Exceptions().Words(prefix) {
		data = append(data, []string{intp.engine.HyphenationString(word), "shell"})
	}
	for _, word := range intp.engine.Dictionary().Exceptions().Words(prefix) {
		data = append(data, []string{intp.engine.HyphenationString(word),
			intp.engine.Dictionary().Identifier})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func addExceptionOp(intp *Intp, args []string) (error, bool) {
	intp.engine.AddException(args...)
	tracer().Infof("%d exceptions added", len(args))
	return nil, false
}

func thresholdOp(intp *Intp, args []string) (error, bool) {
	if len(args) > 0 {
		t, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("threshold not numeric: %v", args[0]), false
		}
		intp.engine.SetThreshold(t)
	}
	pterm.Printf("digram threshold is %d\n", intp.engine.Threshold())
	return nil, false
}

func statsOp(intp *Intp, args []string) (error, bool) {
	dict := intp.engine.Dictionary()
	stats := dict.Stats()
	data := [][]string{
		{"Table", "Entries", "Detail"},
		{"suffixes", strconv.Itoa(stats.Suffixes), fmt.Sprintf("trie %d/%d slots used (%.1f%%)",
			stats.SuffixTrie.UsedSlots, stats.SuffixTrie.TotalSlots, 100*stats.SuffixTrie.FillRatio())},
		{"exceptions", strconv.Itoa(stats.Exceptions), dict.Identifier},
		{"shell exceptions", strconv.Itoa(intp.engine.Exceptions().Len()), ""},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}
