// Package stream produces raw RGBA pixel byte streams at a fixed frame
// geometry.
//
// [FFmpeg] pipes rawvideo output from an external ffmpeg process decoding a
// media file or stdin; [Dir] plays a directory of PNG frames, scaling and
// letterboxing them itself. Both present the same shape to the playback
// loop: an [io.ReadCloser] delivering frames of exactly width*height*4
// bytes, where exhaustion surfaces as a short read.
package stream
