package testsupport

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/muktihari/fit/encoder"
	"github.com/muktihari/fit/profile/factory"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/profile/untyped/fieldnum"
	"github.com/muktihari/fit/profile/untyped/mesgnum"
	"github.com/muktihari/fit/proto"
)

// Semicircle positions used by WriteActivityFIT: 45°N, 90°W.
const (
	ActivityLatSemicircles  int32 = 536870912
	ActivityLongSemicircles int32 = -1073741824
)

func fitField(mesg typedef.MesgNum, num byte, value proto.Value) proto.Field {
	f := factory.CreateField(mesg, num)
	f.Value = value
	return f
}

// WriteActivityFIT encodes a small activity into dir/name: a file_id, one
// record with a position, one record without, and a closing lap. It returns
// the file path.
func WriteActivityFIT(t testing.TB, dir, name string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(dir, name), EncodeActivityFIT(t))
}

// WriteChainedActivityFIT writes copies of the activity back to back as
// chained FIT sequences, followed by trailer.
func WriteChainedActivityFIT(t testing.TB, dir, name string, copies int, trailer []byte) string {
	t.Helper()

	seq := EncodeActivityFIT(t)
	data := make([]byte, 0, len(seq)*copies+len(trailer))
	for range copies {
		data = append(data, seq...)
	}
	data = append(data, trailer...)
	return WriteFile(t, filepath.Join(dir, name), data)
}

// EncodeActivityFIT returns the bytes of the activity WriteActivityFIT writes.
func EncodeActivityFIT(t testing.TB) []byte {
	t.Helper()

	fit := &proto.FIT{
		Messages: []proto.Message{
			{Num: mesgnum.FileId, Fields: []proto.Field{
				fitField(mesgnum.FileId, fieldnum.FileIdType, proto.Uint8(uint8(typedef.FileActivity))),
			}},
			{Num: mesgnum.Record, Fields: []proto.Field{
				fitField(mesgnum.Record, fieldnum.RecordTimestamp, proto.Uint32(86400)),
				fitField(mesgnum.Record, fieldnum.RecordPositionLat, proto.Int32(ActivityLatSemicircles)),
				fitField(mesgnum.Record, fieldnum.RecordPositionLong, proto.Int32(ActivityLongSemicircles)),
				fitField(mesgnum.Record, fieldnum.RecordAltitude, proto.Uint16(3000)),
				fitField(mesgnum.Record, fieldnum.RecordHeartRate, proto.Uint8(142)),
			}},
			{Num: mesgnum.Record, Fields: []proto.Field{
				fitField(mesgnum.Record, fieldnum.RecordTimestamp, proto.Uint32(86401)),
				fitField(mesgnum.Record, fieldnum.RecordHeartRate, proto.Uint8(143)),
			}},
			{Num: mesgnum.Lap, Fields: []proto.Field{
				fitField(mesgnum.Lap, fieldnum.LapStartTime, proto.Uint32(86400)),
				fitField(mesgnum.Lap, fieldnum.LapTotalDistance, proto.Uint32(123400)),
			}},
		},
	}

	var buf bytes.Buffer
	if err := encoder.New(&buf).Encode(fit); err != nil {
		t.Fatalf("encode fit fixture: %v", err)
	}
	return buf.Bytes()
}
