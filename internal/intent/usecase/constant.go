package usecase

const LogPrefixDispatch = "internal.intent.usecase.Dispatch"
