package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const completionLongDescription = `Generate shell completion script for minipress.

To load completions:

Bash:
  $ source <(minipress completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ minipress completion bash > /etc/bash_completion.d/minipress
  # macOS:
  $ minipress completion bash > $(brew --prefix)/etc/bash_completion.d/minipress

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ minipress completion zsh > "${fpath[1]}/_minipress"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ minipress completion fish | source
  # To load completions for each session, execute once:
  $ minipress completion fish > ~/.config/fish/completions/minipress.fish

PowerShell:
  PS> minipress completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> minipress completion powershell > minipress.ps1
  # and source this file from your PowerShell profile.
`

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		Long:                  completionLongDescription,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return genCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newCompletionInstallCmd())
	return cmd
}

func genCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletion(w)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unsupported shell %q", shell)
}

func newCompletionInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install shell completion for your current shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinter(cmd.OutOrStdout())

			shell := detectShell()
			if shell == "" {
				return errors.New("could not detect shell, use 'minipress completion [bash|zsh|fish|powershell]' manually")
			}

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("could not find home directory: %w", err)
			}

			var completionDir, completionFile, rcFile, sourceLine string

			switch shell {
			case "zsh":
				completionDir = filepath.Join(home, ".zsh", "completions")
				completionFile = filepath.Join(completionDir, "_minipress")
				rcFile = filepath.Join(home, ".zshrc")
				sourceLine = fmt.Sprintf("\nfpath=(%s $fpath)\nautoload -Uz compinit && compinit\n", completionDir)

			case "bash":
				completionDir = filepath.Join(home, ".bash_completion.d")
				completionFile = filepath.Join(completionDir, "minipress")
				rcFile = filepath.Join(home, ".bashrc")
				sourceLine = fmt.Sprintf("\n[ -f %s ] && source %s\n", completionFile, completionFile)

			case "fish":
				completionDir = filepath.Join(home, ".config", "fish", "completions")
				completionFile = filepath.Join(completionDir, "minipress.fish")
				rcFile = "" // Fish auto-loads from completions dir
			}

			if err := os.MkdirAll(completionDir, 0o755); err != nil {
				return fmt.Errorf("failed to create completion directory: %w", err)
			}

			f, err := os.Create(completionFile)
			if err != nil {
				return fmt.Errorf("failed to create completion file: %w", err)
			}
			genErr := genCompletion(cmd.Root(), shell, f)
			if err := f.Close(); err != nil && genErr == nil {
				genErr = err
			}
			if genErr != nil {
				return fmt.Errorf("failed to write completion file: %w", genErr)
			}

			p.Success("Installed completion script to %s", completionFile)

			if rcFile != "" {
				rcContent, _ := os.ReadFile(rcFile)
				if !strings.Contains(string(rcContent), "minipress") {
					if err := appendLine(rcFile, sourceLine); err != nil {
						p.Warning("Could not update %s: %v", rcFile, err)
						p.Info("Please add manually: %s", sourceLine)
					} else {
						p.Success("Updated %s", rcFile)
					}
				}
				p.Info("Restart your shell or run: source %s", rcFile)
			}
			return nil
		},
	}
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func detectShell() string {
	shell := os.Getenv("SHELL")
	if strings.Contains(shell, "zsh") {
		return "zsh"
	}
	if strings.Contains(shell, "bash") {
		return "bash"
	}
	if strings.Contains(shell, "fish") {
		return "fish"
	}
	return ""
}
