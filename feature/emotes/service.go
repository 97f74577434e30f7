package emotes

import (
	"context"
	"errors"
	"sort"
	"strings"

	"emote-manager/core/cache"
	"emote-manager/core/errcat"
	"emote-manager/core/seventv"

	"go.uber.org/zap"
)

// Service orchestrates emote catalog operations: it resolves heterogeneous
// user tokens to upstream entities, executes the per-entity mutations
// sequentially and aggregates the mixed outcomes into one report.
type Service struct {
	resolver *Resolver
	errors   *errcat.Catalog
	logger   *zap.Logger
	scorer   Scorer
}

// NewService creates a new emote service.
func NewService(client seventv.Client, store cache.Store, ttl cache.Config, upstream seventv.Config, errs *errcat.Catalog, logger *zap.Logger) *Service {
	return &Service{
		resolver: NewResolver(client, store, ttl, upstream.SearchLimit, errs),
		errors:   errs,
		logger:   logger,
		scorer:   WeightedScorer{},
	}
}

// SetScorer swaps the string-similarity implementation.
func (s *Service) SetScorer(scorer Scorer) {
	s.scorer = scorer
}

// Preview renders the CDN preview for each target. ID tokens are looked up
// directly; name tokens are matched against the source channel's catalog
// when a source is given. Read-only.
func (s *Service) Preview(ctx context.Context, req PreviewRequest) (string, error) {
	if len(req.TargetEmotes) == 0 {
		return "", s.errors.New(errcat.CodeEmptyTargetList)
	}

	ids, queries := ClassifyTargets(req.TargetEmotes)

	var succeeded, failed, failedSearch []Emote
	var fuzzy []FuzzyEmote

	for _, ref := range ids {
		emote, err := s.resolver.Emote(ctx, ref.ID)
		if err != nil {
			ref.ErrorMessage = s.errors.Wrap(err).Message
			failed = append(failed, ref)
			continue
		}
		succeeded = append(succeeded, emote)
	}

	if len(queries) > 0 {
		if req.Source == "" {
			// Names cannot be resolved without a source catalog.
			failedSearch = append(failedSearch, queries...)
		} else {
			catalog, err := s.channelCatalog(ctx, req.Source)
			if err != nil {
				return "", err
			}

			match := MatchCatalog(catalog, queries, s.scorer)
			succeeded = append(succeeded, match.Matched...)
			fuzzy = append(fuzzy, match.Fuzzy...)
			for _, e := range match.NotFound {
				e.ErrorMessage = "Emote Not Found"
				failed = append(failed, e)
			}
		}
	}

	var msg strings.Builder
	if len(succeeded) > 0 {
		msg.WriteString(" | " + joinPreviews(succeeded) + " | ")
	}
	if len(failed) > 0 {
		msg.WriteString(" | " + buildErrorReport(failed) + " | ")
	}
	if len(fuzzy) > 0 {
		msg.WriteString(" | Not found the emote(s). Did you mean : " + buildFuzzyReport(fuzzy) + " | ")
	}
	if len(failedSearch) > 0 {
		msg.WriteString("| Failed to search emote(s): " + joinIdentifiers(failedSearch) + " | ")
	}
	return msg.String(), nil
}

// Search lists the channel's emote names. A tags filter takes priority over
// the name query; with no filter the full catalog is returned.
func (s *Service) Search(ctx context.Context, channel, query, tags string) ([]string, error) {
	catalog, err := s.channelCatalog(ctx, channel)
	if err != nil {
		return nil, err
	}

	if tags != "" {
		needle := strings.ToLower(tags)
		var names []string
		for _, e := range catalog {
			for _, tag := range e.Tags {
				if strings.Contains(strings.ToLower(tag), needle) {
					names = append(names, e.Name)
					break
				}
			}
		}
		return names, nil
	}

	if query != "" {
		needle := strings.ToLower(query)
		var names []string
		for _, e := range catalog {
			if strings.Contains(strings.ToLower(e.Name), needle) {
				names = append(names, e.Name)
			}
		}
		sort.Strings(names)
		return names, nil
	}

	names := make([]string, 0, len(catalog))
	for _, e := range catalog {
		names = append(names, e.Name)
	}
	return names, nil
}

// ChannelEditors returns the usernames with editor rights on the channel.
func (s *Service) ChannelEditors(ctx context.Context, user string) ([]string, error) {
	userID, err := s.resolver.UserID(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.resolver.ChannelEditors(ctx, userID)
}

// EditorAccess returns the channels the user has editor rights on.
func (s *Service) EditorAccess(ctx context.Context, user string) ([]string, error) {
	userID, err := s.resolver.UserID(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.resolver.EditorAccess(ctx, userID)
}

// Add resolves the target tokens and adds each resolved emote to the target
// channel's active set, sequentially and best-effort.
func (s *Service) Add(ctx context.Context, req ModifyRequest) (string, error) {
	if len(req.TargetEmotes) == 0 {
		return "", s.errors.New(errcat.CodeEmptyTargetList)
	}
	if len(req.TargetEmotes) > 1 && req.EmoteRename != "" {
		return "", s.errors.New(errcat.CodeMultiTargetRename)
	}
	if err := s.checkPermission(ctx, req.Actor, req.TargetChannel); err != nil {
		return "", err
	}

	ids, queries := ClassifyTargets(req.TargetEmotes)

	toAdd := append([]Emote(nil), ids...)
	var fuzzy []FuzzyEmote
	var failedSearch []Emote

	switch {
	case req.Source != "" || req.Owner != "":
		catalog, err := s.sourceCatalog(ctx, req)
		if err != nil {
			return "", err
		}

		match := MatchCatalog(catalog, queries, s.scorer)
		toAdd = append(toAdd, match.Matched...)
		fuzzy = append(fuzzy, match.Fuzzy...)
		failedSearch = append(failedSearch, match.NotFound...)

	default:
		for _, q := range queries {
			emote, err := s.resolver.SearchEmote(ctx, q.Name)
			if err != nil {
				failedSearch = append(failedSearch, q)
				continue
			}
			toAdd = append(toAdd, emote)
		}
	}

	targetUserID, err := s.resolver.UserID(ctx, req.TargetChannel)
	if err != nil {
		return "", err
	}
	setID, err := s.resolver.ActiveEmoteSetID(ctx, targetUserID)
	if err != nil {
		return "", err
	}

	var succeeded, failed []Emote
	for _, emote := range toAdd {
		if req.EmoteRename != "" {
			emote.Rename = req.EmoteRename
		}
		if req.DefaultName {
			emote.Rename = ""
		}

		result, err := s.resolver.AddEmote(ctx, emote.ID, setID, emote.Rename)
		if err != nil {
			emote.ErrorMessage = s.errors.Wrap(err).Message
			failed = append(failed, emote)
			continue
		}

		// Correlate the post-mutation set back to this emote; if the slice
		// lacks it, treat the mutation as successful anyway.
		added := emote
		for _, e := range result {
			if e.ID == emote.ID {
				added = e
				added.Rename = emote.Rename
				break
			}
		}
		succeeded = append(succeeded, added)
	}

	var msg strings.Builder
	if len(succeeded) > 0 {
		msg.WriteString("| Successfully added this emote(s): " + joinIdentifiers(succeeded) + " | ")
	}
	if len(failed) > 0 {
		msg.WriteString(" | " + buildErrorReport(failed) + " | ")
	}
	if len(fuzzy) > 0 {
		msg.WriteString(" | Not found the emote(s). Did you mean : " + buildFuzzyReport(fuzzy) + " | ")
	}
	if len(failedSearch) > 0 {
		msg.WriteString("| Failed to search emote(s): " + joinIdentifiers(failedSearch) + " | ")
	}
	return msg.String(), nil
}

// Remove deletes each target emote present in the channel's active set.
// Tokens that resolve to nothing in the catalog are reported, not removed.
func (s *Service) Remove(ctx context.Context, req ModifyRequest) (string, error) {
	if len(req.TargetEmotes) == 0 {
		return "", s.errors.New(errcat.CodeEmptyTargetList)
	}
	if err := s.checkPermission(ctx, req.Actor, req.TargetChannel); err != nil {
		return "", err
	}

	ids, queries := ClassifyTargets(req.TargetEmotes)

	userID, err := s.resolver.UserID(ctx, req.TargetChannel)
	if err != nil {
		return "", err
	}
	catalog, err := s.resolver.ChannelEmotes(ctx, userID)
	if err != nil {
		return "", err
	}

	var toRemove, notExist []Emote
	var fuzzy []FuzzyEmote

	if len(ids) > 0 {
		byID := make(map[string]Emote, len(catalog))
		for _, e := range catalog {
			byID[e.ID] = e
		}
		for _, ref := range ids {
			if e, ok := byID[ref.ID]; ok {
				toRemove = append(toRemove, e)
			} else {
				notExist = append(notExist, ref)
			}
		}
	}

	if len(queries) > 0 {
		match := MatchCatalog(catalog, queries, s.scorer)
		for _, e := range match.Matched {
			// The rename intent has no meaning for removal.
			e.Rename = ""
			toRemove = append(toRemove, e)
		}
		fuzzy = append(fuzzy, match.Fuzzy...)
		notExist = append(notExist, match.NotFound...)
	}

	setID, err := s.resolver.ActiveEmoteSetID(ctx, userID)
	if err != nil {
		return "", err
	}

	var succeeded, failed []Emote
	for _, emote := range toRemove {
		if _, err := s.resolver.RemoveEmote(ctx, emote.ID, setID); err != nil {
			emote.ErrorMessage = s.errors.Wrap(err).Message
			failed = append(failed, emote)
			continue
		}
		succeeded = append(succeeded, emote)
	}

	var msg strings.Builder
	if len(succeeded) > 0 {
		msg.WriteString("| Successfully removed the emote(s): " + joinIdentifiers(succeeded) + " | ")
	}
	if len(failed) > 0 {
		msg.WriteString(" | " + buildErrorReport(failed) + " | ")
	}
	if len(fuzzy) > 0 {
		msg.WriteString(" | Not found the emote(s). Did you mean : " + buildFuzzyReport(fuzzy) + " | ")
	}
	if len(notExist) > 0 {
		msg.WriteString("| Emote(s) not exist in the channel: " + joinIdentifiers(notExist) + " | ")
	}
	return msg.String(), nil
}

// Rename renames a single emote in the channel's active set. The upstream
// has no rename mutation, so this is remove-then-re-add under the new name;
// the two steps are not atomic and there is no rollback. If the re-add
// fails after a successful remove the emote stays absent while the reported
// outcome is a failed rename.
func (s *Service) Rename(ctx context.Context, req ModifyRequest) (string, error) {
	if len(req.TargetEmotes) == 0 {
		return "", s.errors.New(errcat.CodeEmptyTargetList)
	}
	if len(req.TargetEmotes) > 1 {
		return "", s.errors.New(errcat.CodeMultiTargetRename)
	}
	if err := s.checkPermission(ctx, req.Actor, req.TargetChannel); err != nil {
		return "", err
	}

	target := req.TargetEmotes[0]
	ids, queries := ClassifyTargets(req.TargetEmotes)

	userID, err := s.resolver.UserID(ctx, req.TargetChannel)
	if err != nil {
		return "", err
	}
	catalog, err := s.resolver.ChannelEmotes(ctx, userID)
	if err != nil {
		return "", err
	}

	var found *Emote
	if len(ids) == 1 && len(queries) == 0 {
		for _, e := range catalog {
			if e.ID == ids[0].ID {
				found = &e
				break
			}
		}
	} else {
		for _, e := range catalog {
			if e.Name == queries[0].Name {
				found = &e
				break
			}
		}
	}

	if found == nil {
		var msg strings.Builder
		if len(queries) > 0 {
			match := MatchCatalog(catalog, queries, s.scorer)
			if len(match.Fuzzy) > 0 {
				msg.WriteString(" | Not found the emote(s). Did you mean : " + buildFuzzyReport(match.Fuzzy) + " | ")
				return msg.String(), nil
			}
		}
		msg.WriteString("| Failed to search emotes: " + target + " | ")
		return msg.String(), nil
	}

	setID, err := s.resolver.ActiveEmoteSetID(ctx, userID)
	if err != nil {
		return "", err
	}

	// Remove first, then re-add under the new name.
	if _, err := s.resolver.RemoveEmote(ctx, found.ID, setID); err != nil {
		failed := []Emote{{
			Name:         target,
			Rename:       req.EmoteRename,
			ErrorMessage: s.errors.Wrap(err).Message,
		}}
		return " | " + buildErrorReport(failed) + " | ", nil
	}

	if _, err := s.resolver.AddEmote(ctx, found.ID, setID, req.EmoteRename); err != nil {
		failed := []Emote{{
			Name:         target,
			Rename:       req.EmoteRename,
			ErrorMessage: s.errors.Wrap(err).Message,
		}}
		s.logger.Warn("Rename left emote removed after failed re-add",
			zap.String("emote_id", found.ID),
			zap.String("emote_set_id", setID))
		return " | " + buildErrorReport(failed) + " | ", nil
	}

	renamed := Emote{Name: target, Rename: req.EmoteRename}
	return "| Successfully renamed " + target + " to " + renamed.RenameString() + " | ", nil
}

// checkPermission verifies the actor may modify the target channel: the
// channel itself always may; anyone else must be in its editor list. An
// empty actor skips the check.
func (s *Service) checkPermission(ctx context.Context, actor, channel string) error {
	if actor == "" || strings.EqualFold(actor, channel) {
		return nil
	}

	userID, err := s.resolver.UserID(ctx, channel)
	if err != nil {
		return err
	}
	editors, err := s.resolver.ChannelEditors(ctx, userID)
	if err != nil {
		var desc *errcat.Error
		if errors.As(err, &desc) && desc.Code == errcat.CodeNoEditors {
			return s.errors.New(errcat.CodePermissionDenied)
		}
		return err
	}
	for _, editor := range editors {
		if strings.EqualFold(editor, actor) {
			return nil
		}
	}
	return s.errors.New(errcat.CodePermissionDenied)
}

// channelCatalog resolves a channel name to its live emote catalog.
func (s *Service) channelCatalog(ctx context.Context, channel string) ([]Emote, error) {
	userID, err := s.resolver.UserID(ctx, channel)
	if err != nil {
		return nil, err
	}
	return s.resolver.ChannelEmotes(ctx, userID)
}

// sourceCatalog loads the catalog used for name resolution during add:
// either another channel's live set, or a user's owned emotes.
func (s *Service) sourceCatalog(ctx context.Context, req ModifyRequest) ([]Emote, error) {
	if req.Source != "" {
		return s.channelCatalog(ctx, req.Source)
	}

	ownerID, err := s.resolver.UserID(ctx, req.Owner)
	if err != nil {
		var desc *errcat.Error
		if errors.As(err, &desc) && desc.Code == errcat.CodeUserNotFound {
			return nil, &errcat.Error{Code: desc.Code, Message: "Please provide a valid owner username"}
		}
		return nil, err
	}
	return s.resolver.OwnerEmotes(ctx, ownerID)
}
