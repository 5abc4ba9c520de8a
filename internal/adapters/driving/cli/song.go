package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

var songCmd = &cobra.Command{
	Use:   "song",
	Short: "Manage the song database",
}

var songListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all songs",
	Args:  cobra.NoArgs,
	RunE:  runSongList,
}

var songGetCmd = &cobra.Command{
	Use:   "get [song-id]",
	Short: "Show a song",
	Args:  cobra.ExactArgs(1),
	RunE:  runSongGet,
}

var songCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a song",
	Long: `Create a song in a category. The category is given by name or ID.

Example:
  churchtools song create "Großer Gott, wir loben dich" --category Hymnen --author "Ignaz Franz"`,
	Args: cobra.ExactArgs(1),
	RunE: runSongCreate,
}

var songEditCmd = &cobra.Command{
	Use:   "edit [song-id]",
	Short: "Change fields of a song",
	Long: `Change fields of a song. Fields without a flag keep their value;
an empty value clears the field.

Example:
  churchtools song edit 42 --ccli 22025 --practice`,
	Args: cobra.ExactArgs(1),
	RunE: runSongEdit,
}

var songDeleteCmd = &cobra.Command{
	Use:   "delete [song-id]",
	Short: "Delete a song",
	Args:  cobra.ExactArgs(1),
	RunE:  runSongDelete,
}

var songTagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage song tags",
}

var songTagAddCmd = &cobra.Command{
	Use:   "add [song-id] [tag-id]",
	Short: "Add a tag to a song",
	Args:  cobra.ExactArgs(2),
	RunE:  runSongTagAdd,
}

var songTagRemoveCmd = &cobra.Command{
	Use:   "remove [song-id] [tag-id]",
	Short: "Remove a tag from a song",
	Args:  cobra.ExactArgs(2),
	RunE:  runSongTagRemove,
}

var songTagListCmd = &cobra.Command{
	Use:   "list [song-id]",
	Short: "List the tags of a song",
	Args:  cobra.ExactArgs(1),
	RunE:  runSongTagList,
}

var songWithTagCmd = &cobra.Command{
	Use:   "with-tag [tag-id]",
	Short: "List songs carrying a tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runSongWithTag,
}

var (
	songJSON bool

	songCreateCategory  string
	songCreateAuthor    string
	songCreateCopyright string
	songCreateCCLI      string
	songCreateTonality  string
	songCreateBPM       string
	songCreateBeat      string

	songEditTitle     string
	songEditCategory  int
	songEditAuthor    string
	songEditCopyright string
	songEditCCLI      string
	songEditPractice  bool
)

func init() {
	songListCmd.Flags().BoolVar(&songJSON, "json", false, "output as JSON")
	songGetCmd.Flags().BoolVar(&songJSON, "json", false, "output as JSON")

	f := songCreateCmd.Flags()
	f.StringVarP(&songCreateCategory, "category", "c", "", "category name or ID (required)")
	f.StringVar(&songCreateAuthor, "author", "", "author")
	f.StringVar(&songCreateCopyright, "copyright", "", "copyright")
	f.StringVar(&songCreateCCLI, "ccli", "", "CCLI number")
	f.StringVar(&songCreateTonality, "tonality", "", "key of the default arrangement")
	f.StringVar(&songCreateBPM, "bpm", "", "tempo of the default arrangement")
	f.StringVar(&songCreateBeat, "beat", "", "beat of the default arrangement, e.g. 4/4")
	_ = songCreateCmd.MarkFlagRequired("category")

	f = songEditCmd.Flags()
	f.StringVar(&songEditTitle, "title", "", "new title")
	f.IntVar(&songEditCategory, "category-id", 0, "new category ID")
	f.StringVar(&songEditAuthor, "author", "", "new author")
	f.StringVar(&songEditCopyright, "copyright", "", "new copyright")
	f.StringVar(&songEditCCLI, "ccli", "", "new CCLI number")
	f.BoolVar(&songEditPractice, "practice", false, "mark the song for practice")

	songTagCmd.AddCommand(songTagAddCmd)
	songTagCmd.AddCommand(songTagRemoveCmd)
	songTagCmd.AddCommand(songTagListCmd)

	songCmd.AddCommand(songListCmd)
	songCmd.AddCommand(songGetCmd)
	songCmd.AddCommand(songCreateCmd)
	songCmd.AddCommand(songEditCmd)
	songCmd.AddCommand(songDeleteCmd)
	songCmd.AddCommand(songTagCmd)
	songCmd.AddCommand(songWithTagCmd)
	rootCmd.AddCommand(songCmd)
}

func runSongList(cmd *cobra.Command, _ []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}

	songs, err := songService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}
	return outputSongs(cmd, songs)
}

func runSongGet(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}
	id, err := parseID("song", args[0])
	if err != nil {
		return err
	}

	song, err := songService.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get song %d: %w", id, err)
	}

	if songJSON {
		return printJSON(cmd, song)
	}

	cmd.Printf("ID:        %d\n", song.ID)
	cmd.Printf("Name:      %s\n", song.Name)
	cmd.Printf("Category:  %s\n", song.Category.Name)
	cmd.Printf("Author:    %s\n", song.Author)
	cmd.Printf("Copyright: %s\n", song.Copyright)
	cmd.Printf("CCLI:      %s\n", song.CCLI)
	cmd.Printf("Practice:  %t\n", song.ShouldPractice)
	for _, a := range song.Arrangements {
		cmd.Printf("Arrangement %d: %s (%d files)\n", a.ID, a.Name, len(a.Files))
	}
	return nil
}

func runSongCreate(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}

	song := domain.NewSong{
		Title:     args[0],
		Author:    songCreateAuthor,
		Copyright: songCreateCopyright,
		CCLI:      songCreateCCLI,
		Tonality:  songCreateTonality,
		BPM:       songCreateBPM,
		Beat:      songCreateBeat,
	}

	id, err := songService.Create(cmd.Context(), song, songCreateCategory)
	if err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}
	cmd.Printf("Created song %d: %s\n", id, song.Title)
	return nil
}

func runSongEdit(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}
	id, err := parseID("song", args[0])
	if err != nil {
		return err
	}

	var edit domain.SongEdit
	flags := cmd.Flags()
	if flags.Changed("title") {
		edit.Title = &songEditTitle
	}
	if flags.Changed("category-id") {
		edit.CategoryID = &songEditCategory
	}
	if flags.Changed("author") {
		edit.Author = &songEditAuthor
	}
	if flags.Changed("copyright") {
		edit.Copyright = &songEditCopyright
	}
	if flags.Changed("ccli") {
		edit.CCLI = &songEditCCLI
	}
	if flags.Changed("practice") {
		edit.ShouldPractice = &songEditPractice
	}

	if err := songService.Edit(cmd.Context(), id, edit); err != nil {
		return fmt.Errorf("failed to edit song %d: %w", id, err)
	}
	cmd.Printf("Updated song %d\n", id)
	return nil
}

func runSongDelete(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}
	id, err := parseID("song", args[0])
	if err != nil {
		return err
	}

	if err := songService.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete song %d: %w", id, err)
	}
	cmd.Printf("Deleted song %d\n", id)
	return nil
}

func runSongTagAdd(cmd *cobra.Command, args []string) error {
	songID, tagID, err := parseSongTag(args)
	if err != nil {
		return err
	}
	if err := songService.AddTag(cmd.Context(), songID, tagID); err != nil {
		return fmt.Errorf("failed to add tag: %w", err)
	}
	cmd.Printf("Tagged song %d with %d\n", songID, tagID)
	return nil
}

func runSongTagRemove(cmd *cobra.Command, args []string) error {
	songID, tagID, err := parseSongTag(args)
	if err != nil {
		return err
	}
	if err := songService.RemoveTag(cmd.Context(), songID, tagID); err != nil {
		return fmt.Errorf("failed to remove tag: %w", err)
	}
	cmd.Printf("Removed tag %d from song %d\n", tagID, songID)
	return nil
}

func runSongTagList(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}
	id, err := parseID("song", args[0])
	if err != nil {
		return err
	}

	tags, err := songService.Tags(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}
	if len(tags) == 0 {
		cmd.Printf("Song %d has no tags.\n", id)
		return nil
	}
	for _, t := range tags {
		cmd.Println(t)
	}
	return nil
}

func runSongWithTag(cmd *cobra.Command, args []string) error {
	if songService == nil {
		return errors.New("song service not configured")
	}
	tagID, err := parseID("tag", args[0])
	if err != nil {
		return err
	}

	songs, err := songService.WithTag(cmd.Context(), tagID)
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}
	return outputSongs(cmd, songs)
}

func outputSongs(cmd *cobra.Command, songs []domain.Song) error {
	if songJSON {
		return printJSON(cmd, songs)
	}
	if len(songs) == 0 {
		cmd.Println("No songs found.")
		return nil
	}

	rows := make([][]string, len(songs))
	for i, s := range songs {
		rows[i] = []string{strconv.Itoa(s.ID), s.Name, s.Category.Name, s.Author, s.CCLI}
	}
	cmd.Println(renderTable([]string{"ID", "Name", "Category", "Author", "CCLI"}, rows))
	return nil
}

func parseSongTag(args []string) (songID, tagID int, err error) {
	if songService == nil {
		return 0, 0, errors.New("song service not configured")
	}
	if songID, err = parseID("song", args[0]); err != nil {
		return 0, 0, err
	}
	if tagID, err = parseID("tag", args[1]); err != nil {
		return 0, 0, err
	}
	return songID, tagID, nil
}

// parseID parses a positive numeric ID argument.
func parseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID: %s", kind, arg)
	}
	return id, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
