package multilog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	kitlog "github.com/go-kit/log"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFromGokit(t *testing.T) {
	Convey("A go-kit child", t, func() {
		ctx := context.Background()
		buf := &bytes.Buffer{}
		h := FromGokit(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(buf)), slog.LevelInfo)
		Convey("rejects records below its level", func() {
			So(h.Enabled(ctx, slog.LevelDebug), ShouldBeFalse)
			So(h.Enabled(ctx, slog.LevelInfo), ShouldBeTrue)
		})
		Convey("forwards records as keyvals", func() {
			r := record(slog.LevelInfo, "hello")
			r.AddAttrs(slog.Int("n", 2))
			So(h.Handle(ctx, r), ShouldBeNil)
			So(buf.String(), ShouldEqual, "level=INFO msg=hello n=2\n")
		})
		Convey("binds attrs through the logger's context", func() {
			d := h.WithAttrs([]slog.Attr{slog.String("app", "x")})
			So(d.Handle(ctx, record(slog.LevelInfo, "hi")), ShouldBeNil)
			So(buf.String(), ShouldEqual, "app=x level=INFO msg=hi\n")
		})
		Convey("flattens groups into dotted keys", func() {
			d := h.WithGroup("req")
			r := record(slog.LevelWarn, "slow")
			r.AddAttrs(slog.String("id", "7"))
			So(d.Handle(ctx, r), ShouldBeNil)
			So(buf.String(), ShouldEqual, "level=WARN msg=slow req.id=7\n")
		})
	})
}
