package test

import (
	"social_pilot/dal"
	"social_pilot/shared"
)

func actionMatch(handle string, actionType shared.ActionType) func(x any) bool {
	res := func(x any) bool {
		action, ok := x.(*dal.Action)
		if !ok {
			return false
		}
		return action.TargetHandle == handle && action.ActionType == actionType
	}
	return res
}
