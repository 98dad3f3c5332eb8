package handler

type ContextKey string

var (
	SubCtxKey    ContextKey = "sub"
	MyInfoCtx    ContextKey = "myInfo"
	ShiftCtxKey  ContextKey = "shift"
	UserIDCtxKey ContextKey = "userID"
)
