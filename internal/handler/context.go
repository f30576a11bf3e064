package handler

type ContextKey string

var (
	RoleCtxKey       ContextKey = "role"
	SubCtxKey        ContextKey = "sub"
	MyInfoCtx        ContextKey = "myInfo"
	UserInfoCtx      ContextKey = "userInfo"
	EstablishmentCtx ContextKey = "establishment"
	EventCtx         ContextKey = "event"
	ServiceCtx       ContextKey = "service"
)
