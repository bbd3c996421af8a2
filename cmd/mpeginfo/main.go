package main

import (
	"bufio"
	"flag"
	"io"
	"log"
	"os"

	"ktkr.us/pkg/fmtutil"
	"ktkr.us/pkg/mpegaudio/id3"
	"ktkr.us/pkg/mpegaudio/scan"
)

var flagCount = flag.Bool("count", false, "count frames by scanning the whole file")

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("usage: %s [-count] <mpeg audio filename>", os.Args[0])
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		log.Fatal(err)
	}

	br := bufio.NewReader(f)
	skipped, err := id3.Skip(br)
	if err != nil {
		log.Fatal(err)
	}

	info, err := scan.Info(br, fi.Size()-skipped)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("%s, %s, %d kbps", info.MIMEType, fmtutil.HMS(info.Duration), info.Bitrate/1000)
	log.Printf("%d Hz, %d samples/frame", info.SampleRate, info.SamplesPerFrame)

	switch info.Channels {
	case 1:
		log.Print("mono")
	case 2:
		log.Print("stereo")
	}

	if info.Frames > 0 {
		kind := "CBR"
		if info.VBR {
			kind = "VBR"
		}
		log.Printf("%d frames (%s)", info.Frames, kind)
	}

	if *flagCount {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			log.Fatal(err)
		}
		br.Reset(f)
		if _, err := id3.Skip(br); err != nil {
			log.Fatal(err)
		}
		n, err := scan.Count(br)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%d frames scanned", n)
	}
}
