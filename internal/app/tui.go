package app

import (
	"context"
	"errors"
	"io"

	"devruntime/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI runs the terminal timer until the user quits or ctx is done.
func RunTUI(ctx context.Context, options Options, input io.Reader, output io.Writer) error {
	runtime := NewRuntime(options.Settings.TimerConfig(), NewPlayer(), options.logger())
	defer runtime.Close()

	session := runtime.Session()
	model := terminal.New(session, runtime.Stopwatch(), session.Subscribe(32))
	runtime.Start()

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
