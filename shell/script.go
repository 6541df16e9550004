package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("lettergrid_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

// Exec runs one shell command line from Lua. It returns the command's
// output, or nil and an error message.
func Exec(L *lua.LState) int {
	line := L.CheckString(1)
	sc := getShell(L)
	cmd, err := extractFields(line)
	if err == nil && (cmd.cmd == "exit" || cmd.cmd == "bye") {
		err = errors.New("exit is not allowed in a script")
	}
	var r *Response
	if err == nil {
		r, err = sc.dispatch(cmd)
	}
	if err != nil {
		log.Err(err).Str("line", line).Msg("error-executing-script-command")
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	if r == nil {
		L.Push(lua.LString(""))
	} else {
		L.Push(lua.LString(r.message))
	}
	// return number of results pushed to stack.
	return 1
}

// Score returns the board score as a number.
func Score(L *lua.LState) int {
	sc := getShell(L)
	L.Push(lua.LNumber(sc.session.Score()))
	return 1
}

func (sc *ShellController) runScript(L *lua.LState) {
	lsc := L.NewUserData()
	lsc.Value = sc
	L.SetGlobal("lettergrid_shell", lsc)

	mod := L.NewTable()
	L.SetField(mod, "exec", L.NewFunction(Exec))
	L.SetField(mod, "score", L.NewFunction(Score))
	L.SetGlobal("lettergrid", mod)

	luajson.Preload(L)
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()
	sc.runScript(L)

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return nil, nil
}
