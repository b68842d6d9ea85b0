package cmd

import (
	"fmt"
	"strings"
)

// commandNames lists the subcommands offered by shell completion.
var commandNames = []string{
	"add", "ls", "edit", "status", "start", "done", "reopen", "rm",
	"summary", "tui", "export", "init", "doctor", "config", "logs",
	"completion", "version", "help",
}

var statusWords = []string{"open", "in-progress", "done"}

// completionCommand prints a completion script for the given shell.
func completionCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: taskdeck completion bash|zsh|fish|powershell")
	}

	commands := strings.Join(commandNames, " ")
	statuses := strings.Join(statusWords, " ")
	switch strings.ToLower(args[0]) {
	case "bash":
		fmt.Fprintf(stdout, bashCompletion, commands, statuses)
	case "zsh":
		fmt.Fprintf(stdout, zshCompletion, commands, statuses)
	case "fish":
		fmt.Fprintf(stdout, fishCompletion, commands, commands, statuses)
	case "powershell", "pwsh":
		fmt.Fprintf(stdout, powershellCompletion, quoteList(commandNames))
	default:
		return fmt.Errorf("unsupported shell %q (expected bash, zsh, fish or powershell)", args[0])
	}
	return nil
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return strings.Join(quoted, ", ")
}

const bashCompletion = `# taskdeck bash completion
_taskdeck() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    case "$prev" in
        taskdeck)
            COMPREPLY=($(compgen -W "%s" -- "$cur"))
            return ;;
        ls|-status)
            COMPREPLY=($(compgen -W "%s" -- "$cur"))
            return ;;
        -format)
            COMPREPLY=($(compgen -W "json yaml" -- "$cur"))
            return ;;
        -p|-priority|-default-priority)
            COMPREPLY=($(compgen -W "low medium high" -- "$cur"))
            return ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish powershell" -- "$cur"))
            return ;;
    esac
}
complete -o default -F _taskdeck taskdeck
`

const zshCompletion = `#compdef taskdeck
# taskdeck zsh completion
_taskdeck() {
    if (( CURRENT == 2 )); then
        _values 'command' %s
        return
    fi
    case "${words[2]}" in
        ls) _values 'status' %s ;;
        completion) _values 'shell' bash zsh fish powershell ;;
        *) _files ;;
    esac
}
compdef _taskdeck taskdeck
`

const fishCompletion = `# taskdeck fish completion
complete -c taskdeck -f -n "not __fish_seen_subcommand_from %s" -a "%s"
complete -c taskdeck -f -n "__fish_seen_subcommand_from ls" -a "%s"
complete -c taskdeck -f -n "__fish_seen_subcommand_from completion" -a "bash zsh fish powershell"
complete -c taskdeck -f -n "__fish_seen_subcommand_from export" -l format -a "json yaml"
`

const powershellCompletion = `# taskdeck PowerShell completion
Register-ArgumentCompleter -Native -CommandName taskdeck -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)
    $commands = @(%s)
    $commands | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
`
