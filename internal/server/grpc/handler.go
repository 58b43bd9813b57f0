package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/privachat/internal/proto"
	"github.com/dmitrijs2005/privachat/internal/server/models"
	"github.com/dmitrijs2005/privachat/internal/server/services"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	identity, err := s.users.Register(ctx, services.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		PublicKey: req.PublicKey,
		WrappedKey: models.WrappedKey{
			Salt:       req.GetWrappedKey().GetSalt(),
			IV:         req.GetWrappedKey().GetIv(),
			Ciphertext: req.GetWrappedKey().GetCiphertext(),
		},
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "Register", err)
	}

	s.logger.Info(ctx, "Registered", "username", identity.Username, "id", identity.ID)
	return &pb.RegisterResponse{Profile: profileToProto(identity.Profile())}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, identity, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "Login", err)
	}

	return &pb.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Profile:      profileToProto(identity.Profile()),
		WrappedKey: &pb.WrappedKey{
			Salt:       identity.WrappedKey.Salt,
			Iv:         identity.WrappedKey.IV,
			Ciphertext: identity.WrappedKey.Ciphertext,
		},
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "RefreshToken", err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) GetPublicKey(ctx context.Context, req *pb.GetPublicKeyRequest) (*pb.GetPublicKeyResponse, error) {
	if _, err := principalFromContext(ctx); err != nil {
		return nil, err
	}

	key, err := s.users.GetPublicKey(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, "GetPublicKey", err)
	}
	return &pb.GetPublicKeyResponse{Username: req.Username, PublicKey: key}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.ProfileResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	username := req.Username
	if username == "" {
		username = p.Username
	}
	profile, err := s.users.GetProfile(ctx, username)
	if err != nil {
		return nil, s.toStatus(ctx, "GetProfile", err)
	}
	return &pb.ProfileResponse{Profile: profileToProto(profile)}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.ProfileResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.users.UpdateProfile(ctx, p.UserID, req.DisplayName, req.About)
	if err != nil {
		return nil, s.toStatus(ctx, "UpdateProfile", err)
	}
	return &pb.ProfileResponse{Profile: profileToProto(profile)}, nil
}

func (s *GRPCServer) SearchUsers(ctx context.Context, req *pb.SearchUsersRequest) (*pb.SearchUsersResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	found, err := s.contacts.Search(ctx, req.Query, p.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, "SearchUsers", err)
	}

	resp := &pb.SearchUsersResponse{Users: make([]*pb.Profile, 0, len(found))}
	for _, f := range found {
		resp.Users = append(resp.Users, profileToProto(f))
	}
	return resp, nil
}

func (s *GRPCServer) SendFriendRequest(ctx context.Context, req *pb.SendFriendRequestRequest) (*pb.FriendRequestResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fr, err := s.contacts.SendRequest(ctx, p.UserID, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, "SendFriendRequest", err)
	}

	s.logger.Info(ctx, "Friend request sent", "from", p.Username, "to", req.Username)
	return &pb.FriendRequestResponse{Request: friendRequestToProto(fr)}, nil
}

func (s *GRPCServer) ListFriendRequests(ctx context.Context, req *pb.ListFriendRequestsRequest) (*pb.ListFriendRequestsResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := s.contacts.ListPending(ctx, p.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, "ListFriendRequests", err)
	}

	resp := &pb.ListFriendRequestsResponse{Requests: make([]*pb.FriendRequest, 0, len(pending))}
	for _, fr := range pending {
		resp.Requests = append(resp.Requests, friendRequestToProto(fr))
	}
	return resp, nil
}

func (s *GRPCServer) RespondFriendRequest(ctx context.Context, req *pb.RespondFriendRequestRequest) (*pb.FriendRequestResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fr, err := s.contacts.Respond(ctx, req.RequestId, p.UserID, req.Decision)
	if err != nil {
		return nil, s.toStatus(ctx, "RespondFriendRequest", err)
	}
	return &pb.FriendRequestResponse{Request: friendRequestToProto(fr)}, nil
}

func (s *GRPCServer) ListContacts(ctx context.Context, req *pb.ListContactsRequest) (*pb.ListContactsResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	contacts, err := s.contacts.ListContacts(ctx, p.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, "ListContacts", err)
	}

	resp := &pb.ListContactsResponse{Contacts: make([]*pb.Contact, 0, len(contacts))}
	for _, c := range contacts {
		resp.Contacts = append(resp.Contacts, contactToProto(c))
	}
	return resp, nil
}

// GetMessages pages forward from After, otherwise backward from Before.
// With neither set it returns the newest page.
func (s *GRPCServer) GetMessages(ctx context.Context, req *pb.GetMessagesRequest) (*pb.GetMessagesResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var history []*models.Envelope
	if req.After != nil {
		history, err = s.messages.History(ctx, p.Username, req.Peer, req.After.AsTime(), int(req.Limit))
	} else {
		history, err = s.messages.Recent(ctx, p.Username, req.Peer, timeOrZero(req.Before), int(req.Limit))
	}
	if err != nil {
		return nil, s.toStatus(ctx, "GetMessages", err)
	}

	return &pb.GetMessagesResponse{Envelopes: envelopesToProto(history)}, nil
}

// SendEnvelope relays an envelope without an open stream.
func (s *GRPCServer) SendEnvelope(ctx context.Context, req *pb.SendEnvelopeRequest) (*pb.SendEnvelopeResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := s.relay.SendEnvelope(ctx, p.Username, envelopeFromProto(req.Envelope))
	if err != nil {
		return nil, s.toStatus(ctx, "SendEnvelope", err)
	}

	return &pb.SendEnvelopeResponse{
		Envelope:  envelopeToProto(receipt.Envelope),
		Persisted: receipt.Persisted,
		Delivered: receipt.Delivered,
	}, nil
}

func (s *GRPCServer) ToggleReaction(ctx context.Context, req *pb.ToggleReactionRequest) (*pb.ToggleReactionResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	e, err := s.relay.ReactionUpdate(ctx, req.EnvelopeId, p.Username, req.Emoji)
	if err != nil {
		return nil, s.toStatus(ctx, "ToggleReaction", err)
	}
	return &pb.ToggleReactionResponse{Envelope: envelopeToProto(e)}, nil
}

func (s *GRPCServer) ExportHistory(ctx context.Context, req *pb.ExportHistoryRequest) (*pb.ExportHistoryResponse, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.exports.ExportHistory(ctx, p.Username, req.Peer)
	if err != nil {
		return nil, s.toStatus(ctx, "ExportHistory", err)
	}

	s.logger.Info(ctx, "History exported", "owner", p.Username, "peer", req.Peer, "count", res.Count)
	return &pb.ExportHistoryResponse{
		Key:       res.Key,
		Url:       res.URL,
		Count:     int32(res.Count),
		ExpiresAt: timestampOrNil(res.ExpiresAt),
	}, nil
}
