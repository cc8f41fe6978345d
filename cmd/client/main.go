package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"reels-service/internal/domain/dto"
	consts "reels-service/pkg/constants"
	"reels-service/pkg/file"
	"reels-service/pkg/helper"
)

func main() {
	server := flag.String("server", "http://localhost:3000", "Server base URL")
	filePath := flag.String("file", "", "Video file to upload")
	user := flag.String("user", "", "Posting user id (x-uuid)")
	title := flag.String("title", "", "Video title")
	description := flag.String("description", "", "Video description")
	length := flag.Int("length", 0, "Video length in seconds")
	reelTitle := flag.String("reel-title", "", "Also create a reel with this title")
	reelDescription := flag.String("reel-description", "", "Reel description")
	timeout := flag.Duration("timeout", 5*time.Minute, "Request timeout")
	flag.Parse()

	if strings.TrimSpace(*filePath) == "" {
		log.Fatal("-file is required")
	}
	if strings.TrimSpace(*user) == "" {
		log.Fatal("-user is required")
	}

	if !file.IsVideoFile(*filePath) {
		log.Printf("warning: %s does not look like a video file", *filePath)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("could not read file: %v", err)
	}
	filename := filepath.Base(*filePath)

	video := dto.VideoMetadata{
		Title:              *title,
		Description:        *description,
		VideoLengthSeconds: int32(*length),
	}

	var reel *dto.ReelMetadata
	endpoint := "/video"
	if *reelTitle != "" {
		reel = &dto.ReelMetadata{
			PostingUserID: *user,
			Title:         *reelTitle,
			Description:   *reelDescription,
		}
		endpoint = "/reel-video"
	}

	body, contentType, err := buildBody(filename, data, video, reel)
	if err != nil {
		log.Fatalf("could not build request: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	url := strings.TrimRight(*server, "/") + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		log.Fatalf("could not create request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set(consts.UserIDHeader, *user)

	fmt.Printf("Uploading %s (%d bytes) to %s\n", filename, len(data), url)
	start := time.Now()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("upload failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("could not read response: %v", err)
	}

	fmt.Printf("HTTP %d in %s\n", resp.StatusCode, time.Since(start).Round(time.Millisecond))
	var pretty bytes.Buffer
	if json.Indent(&pretty, respBody, "", "  ") == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Println(string(respBody))
	}
	if resp.StatusCode >= 300 {
		os.Exit(1)
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func buildBody(filename string, data []byte, video dto.VideoMetadata, reel *dto.ReelMetadata) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	videoJSON, err := json.Marshal(video)
	if err != nil {
		return nil, "", err
	}
	if err := writer.WriteField(consts.FieldVideo, string(videoJSON)); err != nil {
		return nil, "", err
	}

	if reel != nil {
		reelJSON, err := json.Marshal(reel)
		if err != nil {
			return nil, "", err
		}
		if err := writer.WriteField(consts.FieldReel, string(reelJSON)); err != nil {
			return nil, "", err
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, consts.FieldFile, quoteEscaper.Replace(filename)))
	h.Set("Content-Type", helper.GetMimeTypeFromExtension(filename))
	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}
