package protocol

// Message names carried in the envelope "t" field.
const (
	MsgInit         = "init"
	MsgNewPlayer    = "new-player"
	MsgMovePlayer   = "move-player"
	MsgUpdatePlayer = "update-player"
	MsgCollision    = "collision"
	MsgUpdateCoin   = "update-coin"
	MsgRemovePlayer = "remove-player"
)

// Sent by the server.
var serverMessages = map[string]bool{
	MsgInit:         true,
	MsgNewPlayer:    true,
	MsgUpdatePlayer: true,
	MsgUpdateCoin:   true,
	MsgRemovePlayer: true,
}

// Sent by clients.
var clientMessages = map[string]bool{
	MsgMovePlayer: true,
	MsgCollision:  true,
}

// IsServerMessage reports whether t is a server-to-client message name.
func IsServerMessage(t string) bool { return serverMessages[t] }

// IsClientMessage reports whether t is a client-to-server message name.
func IsClientMessage(t string) bool { return clientMessages[t] }
