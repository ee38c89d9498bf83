package framesource

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/AnyUserName/vscope-cli/internal/scope"
)

// FrameFunc receives each extracted frame in presentation order. Returning
// an error stops the extraction.
type FrameFunc func(index int, buf *scope.PixelBuffer) error

// ExtractFrames streams frames out of a video file through ffmpeg at the
// given rate (frames per second of source time), decodes each as PNG and
// hands the converted pixel buffer to fn. maxWidth > 0 caps the frame
// width (ffmpeg scales, preserving aspect ratio, never upscaling).
// Requires ffmpeg on PATH. Returns the number of frames delivered.
func ExtractFrames(ctx context.Context, videoPath string, fps, maxWidth int, fn FrameFunc) (int, error) {
	if fps <= 0 {
		fps = 1
	}

	args := ffmpeg.KwArgs{
		"format": "image2pipe",
		"vcodec": "png",
		"r":      strconv.Itoa(fps),
	}
	if maxWidth > 0 {
		args["vf"] = fmt.Sprintf("scale='min(%d,iw)':-2", maxWidth)
	}

	pr, pw := io.Pipe()
	stream := ffmpeg.Input(videoPath).
		Output("pipe:1", args).
		WithOutput(pw).
		WithErrorOutput(io.Discard)
	stream.Context = ctx

	ffmpegErr := make(chan error, 1)
	go func() {
		err := stream.Run()
		pw.CloseWithError(err)
		ffmpegErr <- err
	}()

	reader := bufio.NewReaderSize(pr, 1<<20)
	count := 0
	for {
		img, err := png.Decode(reader)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			pr.CloseWithError(err)
			<-ffmpegErr
			return count, fmt.Errorf("decode frame %d: %w", count, err)
		}

		if err := fn(count, FromImage(img)); err != nil {
			pr.CloseWithError(err)
			<-ffmpegErr
			return count, err
		}
		count++
	}

	if err := <-ffmpegErr; err != nil {
		return count, fmt.Errorf("ffmpeg: %w", err)
	}
	return count, nil
}

// videoProbe captures the stream fields needed to size a run.
type videoProbe struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		NbFrames     string `json:"nb_frames"`      // string in ffprobe output
		AvgFrameRate string `json:"avg_frame_rate"` // "num/den"
		Duration     string `json:"duration"`
	} `json:"streams"`
}

// VideoInfo summarizes the first video stream of a file.
type VideoInfo struct {
	Width      int
	Height     int
	FrameCount int // 0 when the container does not report it
}

// Probe inspects a video file with ffprobe. Frame count falls back to
// avg_frame_rate × duration when nb_frames is absent.
func Probe(videoPath string) (*VideoInfo, error) {
	probeStr, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return nil, fmt.Errorf("ffprobe: %w", err)
	}

	var probe videoProbe
	if err := json.Unmarshal([]byte(probeStr), &probe); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	for _, s := range probe.Streams {
		if s.CodecType != "video" {
			continue
		}
		info := &VideoInfo{Width: s.Width, Height: s.Height}

		if s.NbFrames != "" && s.NbFrames != "0" {
			if n, err := strconv.Atoi(s.NbFrames); err == nil {
				info.FrameCount = n
				return info, nil
			}
		}
		if parts := strings.Split(s.AvgFrameRate, "/"); len(parts) == 2 {
			num, _ := strconv.ParseFloat(parts[0], 64)
			den, _ := strconv.ParseFloat(parts[1], 64)
			dur, _ := strconv.ParseFloat(s.Duration, 64)
			if den != 0 && dur > 0 {
				info.FrameCount = int(num / den * dur)
			}
		}
		return info, nil
	}
	return nil, errors.New("no video stream found")
}
