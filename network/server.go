package network

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/libp2p/go-reuseport"
	"github.com/metaperl/mcg/batch"
	"github.com/metaperl/mcg/logger"
	"github.com/metaperl/mcg/types"
)

var Log = logger.GetLogger()

const LISTEN_TIMEOUT = 300

// Largest UDP payload.
const BUFFER_SIZE = 65507

type Handler func(request types.PathRequest) types.PathReply

/*
 * Computes the requested path. Parse errors go back to the client,
 * an unknown mode gives the usual diagnostic as output.
 */
func PathHandler(request types.PathRequest) types.PathReply {
	output, err := batch.ComputeLine(request.Line, request.Mode)

	var parseError *types.ParseError
	if errors.As(err, &parseError) {
		return types.PathReply{Error: parseError.Reason}
	}

	if err != nil {
		return types.PathReply{Error: err.Error()}
	}

	return types.PathReply{Output: output}
}

func Listen(addr string) (net.PacketConn, error) {
	conn, err := reuseport.ListenPacket("udp4", addr)

	if err != nil {
		return nil, &types.ResourceError{Resource: addr, Err: err}
	}

	return conn, nil
}

/*
 * Answer path requests on conn until ctx is cancelled.
 * Reads time out every LISTEN_TIMEOUT ms so cancellation is noticed.
 */
func Serve(ctx context.Context, conn net.PacketConn, handle Handler) error {
	buffer := make([]byte, BUFFER_SIZE)

	for {
		select {
		case <-ctx.Done():
			return nil

		default:
			deadline := time.Now().Add(LISTEN_TIMEOUT * time.Millisecond)

			if err := conn.SetReadDeadline(deadline); err != nil {
				return &types.ResourceError{Resource: conn.LocalAddr().String(), Err: err}
			}

			n, addr, err := conn.ReadFrom(buffer)

			if err != nil {
				var nErr net.Error
				if errors.As(err, &nErr) && nErr.Timeout() {
					continue
				}

				if ctx.Err() != nil {
					return nil
				}

				return &types.ResourceError{Resource: conn.LocalAddr().String(), Err: err}
			}

			reply(conn, addr, buffer[:n], handle)
		}
	}
}

/*
 * Malformed datagrams are dropped, they have no UUID to answer to.
 */
func reply(conn net.PacketConn, addr net.Addr, encodedMsg []byte, handle Handler) {
	msg, err := JsonToMsg[types.PathRequest](encodedMsg)

	if err != nil || msg.Header.Type != types.REQUEST {
		Log.Warn().Str("from", addr.String()).Msg("Discarding datagram that is not a path request")
		return
	}

	Log.Debug().Str("from", addr.String()).Str("mode", msg.Content.Mode).Msg(msg.Content.Line)

	encodedReply, err := FormatReplyMsg(msg.Header.UUID, handle(msg.Content)).ToJson()

	if err != nil {
		Log.Error().Err(err).Msg("Could not encode reply")
		return
	}

	if _, err := conn.WriteTo(encodedReply, addr); err != nil {
		Log.Warn().Err(err).Str("to", addr.String()).Msg("Could not send reply")
	}
}
