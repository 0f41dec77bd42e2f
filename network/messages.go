package network

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/metaperl/mcg/types"
)

/*
 * From stackoverflow:
 * https://shorturl.at/bfxAI
 */
func pseudo_uuid() (uuid string) {
	b := make([]byte, 16)
	_, err := rand.Read(b)
	if err != nil {
		Log.Error().Err(err).Msg("Could not read random bytes")
		return
	}

	uuid = fmt.Sprintf("%X-%X-%X-%X-%X", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])

	return
}

func FormatRequestMsg(mode string, line string) types.Msg[types.PathRequest] {
	return types.Msg[types.PathRequest]{
		Header: types.Header{
			Type: types.REQUEST,
			UUID: pseudo_uuid(),
		},
		Content: types.PathRequest{
			Mode: mode,
			Line: line,
		},
	}
}

/*
 * The reply carries the UUID of the request it answers.
 */
func FormatReplyMsg(requestUUID string, reply types.PathReply) types.Msg[types.PathReply] {
	return types.Msg[types.PathReply]{
		Header: types.Header{
			Type: types.REPLY,
			UUID: requestUUID,
		},
		Content: reply,
	}
}

func JsonToMsg[T types.Content](encodedMsg []byte) (types.Msg[T], error) {
	var msg types.Msg[T]

	err := json.Unmarshal(encodedMsg, &msg)

	return msg, err
}
