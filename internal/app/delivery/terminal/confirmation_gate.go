package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"medvault-client/internal/app/contracts"
	"medvault-client/internal/app/models"
	"strings"
	"sync"
)

type answer struct {
	line string
	err  error
}

// promptGate renders the confirmation dialog and waits for a y/N line on in.
type promptGate struct {
	renderer contracts.DialogRenderer
	in       *bufio.Reader
	out      io.Writer

	mu      sync.Mutex
	pending chan answer
}

func NewPromptGate(in io.Reader, out io.Writer, renderer contracts.DialogRenderer) contracts.ConfirmationGate {
	return &promptGate{renderer: renderer, in: bufio.NewReader(in), out: out}
}

func (g *promptGate) Confirm(ctx context.Context, prompt models.ConfirmationPrompt) (bool, error) {
	g.renderer.Render(ctx, prompt.Dialog)
	fmt.Fprint(g.out, "Send emergency request? [y/N]: ")

	lines := g.nextLine()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-lines:
		g.mu.Lock()
		g.pending = nil
		g.mu.Unlock()
		if a.err != nil {
			return false, a.err
		}
		return isYes(a.line), nil
	}
}

// nextLine hands out the read left in flight by a cancelled prompt, or starts
// reading one line. The reader exits as soon as the line or EOF arrives.
func (g *promptGate) nextLine() <-chan answer {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending != nil {
		return g.pending
	}

	pending := make(chan answer, 1)
	go func() {
		line, err := g.in.ReadString('\n')
		if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
			pending <- answer{err: err}
			return
		}
		pending <- answer{line: line}
	}()
	g.pending = pending
	return pending
}

func isYes(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// staticGate answers every prompt the same way; used for --yes.
type staticGate struct {
	renderer contracts.DialogRenderer
	answer   bool
}

func NewStaticGate(answer bool, renderer contracts.DialogRenderer) contracts.ConfirmationGate {
	return &staticGate{renderer: renderer, answer: answer}
}

func (g *staticGate) Confirm(ctx context.Context, prompt models.ConfirmationPrompt) (bool, error) {
	if g.renderer != nil {
		g.renderer.Render(ctx, prompt.Dialog)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return g.answer, nil
}
