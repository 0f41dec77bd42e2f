package network

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/libp2p/go-reuseport"
	"github.com/metaperl/mcg/types"
)

const REPLY_TIMEOUT = 500
const MAX_RESENDS = 3

var ErrNoReply = errors.New("no reply from path service")

/*
 * Send a path request to the service at addr and wait for its reply.
 * The request is resent every REPLY_TIMEOUT ms, at most MAX_RESENDS times.
 */
func Request(ctx context.Context, addr string, request types.PathRequest) (types.PathReply, error) {
	resolvedAddr, err := net.ResolveUDPAddr("udp4", addr)

	if err != nil {
		return types.PathReply{}, &types.ResourceError{Resource: addr, Err: err}
	}

	conn, err := reuseport.ListenPacket("udp4", ":0")

	if err != nil {
		return types.PathReply{}, &types.ResourceError{Resource: addr, Err: err}
	}
	defer conn.Close()

	msg := FormatRequestMsg(request.Mode, request.Line)
	encodedMsg, err := msg.ToJson()

	if err != nil {
		return types.PathReply{}, err
	}

	buffer := make([]byte, BUFFER_SIZE)

	for attempt := 0; attempt <= MAX_RESENDS; attempt++ {
		if err := ctx.Err(); err != nil {
			return types.PathReply{}, err
		}

		if attempt > 0 {
			Log.Debug().Int("attempt", attempt).Str("to", addr).Msg("Resending path request")
		}

		if _, err := conn.WriteTo(encodedMsg, resolvedAddr); err != nil {
			return types.PathReply{}, &types.ResourceError{Resource: addr, Err: err}
		}

		reply, found, err := awaitReply(ctx, conn, msg.Header.UUID, buffer)

		if err != nil {
			return types.PathReply{}, &types.ResourceError{Resource: addr, Err: err}
		}

		if found {
			return reply, nil
		}
	}

	return types.PathReply{}, &types.ResourceError{Resource: addr, Err: ErrNoReply}
}

/*
 * Read until the reply to uuid arrives or REPLY_TIMEOUT expires.
 * Stale replies to earlier sends are skipped.
 */
func awaitReply(
	ctx context.Context,
	conn net.PacketConn,
	uuid string,
	buffer []byte,
) (types.PathReply, bool, error) {

	deadline := time.Now().Add(REPLY_TIMEOUT * time.Millisecond)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := conn.SetReadDeadline(deadline); err != nil {
		return types.PathReply{}, false, err
	}

	for {
		n, _, err := conn.ReadFrom(buffer)

		if err != nil {
			var nErr net.Error
			if errors.As(err, &nErr) && nErr.Timeout() {
				return types.PathReply{}, false, nil
			}

			return types.PathReply{}, false, err
		}

		msg, err := JsonToMsg[types.PathReply](buffer[:n])

		if err != nil || msg.Header.Type != types.REPLY || msg.Header.UUID != uuid {
			continue
		}

		return msg.Content, true, nil
	}
}
