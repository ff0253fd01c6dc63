package services

import (
	"context"
	"sync"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type notification struct {
	target  string
	event   string
	payload interface{}
}

// recordingNotifier keeps every event it is asked to deliver.
type recordingNotifier struct {
	mu         sync.Mutex
	users      []notification
	rooms      []notification
	broadcasts []notification
}

func (n *recordingNotifier) NotifyUser(email, event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, notification{email, event, payload})
}

func (n *recordingNotifier) NotifyRoom(room, event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rooms = append(n.rooms, notification{room, event, payload})
}

func (n *recordingNotifier) Broadcast(event string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.broadcasts = append(n.broadcasts, notification{"", event, payload})
}

// fakePresigner echoes the requested key back in the URL.
type fakePresigner struct {
	putInput *s3.PutObjectInput
	getInput *s3.GetObjectInput
	err      error
}

func (p *fakePresigner) PresignPutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	p.putInput = params
	if p.err != nil {
		return nil, p.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://bucket.example/" + *params.Key + "?put", Method: "PUT"}, nil
}

func (p *fakePresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	p.getInput = params
	if p.err != nil {
		return nil, p.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://bucket.example/" + *params.Key, Method: "GET"}, nil
}
