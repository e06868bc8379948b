package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх файлов процесса.
// Подсказки пишутся в prompts (stderr), чтобы не смешиваться с выводом команд в pipe.
type Stdio struct {
	in      *os.File
	out     *os.File
	prompts *os.File
	reader  *bufio.Reader
}

// NewStdio возвращает IO на stdin, stdout и stderr
func NewStdio() IO {
	return newStdio(os.Stdin, os.Stdout, os.Stderr)
}

func newStdio(in, out, prompts *os.File) *Stdio {
	return &Stdio{
		in:      in,
		out:     out,
		prompts: prompts,
		reader:  bufio.NewReader(in),
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) IsTerminal() bool {
	return term.IsTerminal(int(s.out.Fd()))
}

// ReadInput читает одну строку; последняя строка без перевода строки тоже принимается
func (s *Stdio) ReadInput(prompt string) (string, error) {
	_, _ = fmt.Fprint(s.prompts, prompt)

	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword читает секрет без эха; если stdin не терминал, читает строку как есть
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		return s.ReadInput(prompt)
	}

	_, _ = fmt.Fprint(s.prompts, prompt)
	secret, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(s.prompts)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
