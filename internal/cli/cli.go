package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Args is a command line of the form "cmd -key value -switch".
type Args struct {
	commandName string
	params      map[string]string
}

func ParseArgs(args []string) *Args {
	var cmdName = ""
	var flags = make(map[string]string)
	for i := 0; i < len(args); i++ {
		var arg = args[i]
		if strings.HasPrefix(arg, "-") {
			var k = strings.TrimLeft(arg, "-")
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				flags[k] = args[i+1]
				i++
			} else {
				flags[k] = "true"
			}
		} else if cmdName == "" {
			cmdName = arg
		}
	}
	return &Args{
		commandName: cmdName,
		params:      flags,
	}
}

func (a *Args) CommandName() string {
	return a.commandName
}

func (a *Args) GetString(name string, defaultVal string) string {
	var val, ok = a.params[name]
	if !ok {
		return defaultVal
	}
	return val
}

func (a *Args) GetInt(name string, defaultVal int) (int, error) {
	var val, ok = a.params[name]
	if !ok {
		return defaultVal, nil
	}
	var v, err = strconv.Atoi(val)
	if err != nil {
		return defaultVal, fmt.Errorf("parameter %v: %w", name, err)
	}
	return v, nil
}

func (a *Args) GetBool(name string, defaultVal bool) (bool, error) {
	var val, ok = a.params[name]
	if !ok {
		return defaultVal, nil
	}
	var v, err = strconv.ParseBool(val)
	if err != nil {
		return defaultVal, fmt.Errorf("parameter %v: %w", name, err)
	}
	return v, nil
}

type CommandHandler struct {
	items map[string]func() error
}

func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		items: make(map[string]func() error),
	}
}

func (ch *CommandHandler) Add(name string, handler func() error) {
	ch.items[name] = handler
}

func (ch *CommandHandler) Execute(commandName string) error {
	handler, found := ch.items[commandName]
	if !found {
		return fmt.Errorf("command not found %v", commandName)
	}
	return handler()
}
