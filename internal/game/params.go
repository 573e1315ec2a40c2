package game

import (
	"strconv"

	"lightsout/internal/core"
)

// Parameters reports the board setup and progress for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	snap := s.Snapshot()
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("rows", "Rows", snap.Rows),
				intParam("columns", "Columns", snap.Columns),
				intParam("lit_start", "Lit at start", snap.StartLit),
				int64Param("seed", "Seed", snap.Seed),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("lit", "Lit", snap.Lit),
				intParam("moves", "Moves", snap.Moves),
				boolParam("complete", "Solved", snap.Complete),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
